// Package report renders analysis results as console tables. The core
// produces structured values; all formatting lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"zipfstat/models"
)

// Result renders one document's summary and its top-k ranked words.
func Result(r *models.Result, topK int) string {
	var sb strings.Builder

	sb.WriteString(summaryTable(r))
	sb.WriteString("\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Rank", "Word", "Count", "Freq", "C_opt/r"})
	for _, e := range r.TopWords(topK) {
		tw.AppendRow(table.Row{
			e.Rank, e.Word, e.Count,
			fmt.Sprintf("%.6f", e.Freq),
			fmt.Sprintf("%.6f", e.Theoretical),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	sb.WriteString(tw.Render())
	sb.WriteString("\n")

	return sb.String()
}

func summaryTable(r *models.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRow(table.Row{"Document", r.Name})
	if r.Language != "" {
		tw.AppendRow(table.Row{"Language", r.Language})
	}
	if r.Encoding != "" {
		tw.AppendRow(table.Row{"Encoding", r.Encoding})
	}
	tw.AppendRow(table.Row{"Total words", r.TotalWords})
	tw.AppendRow(table.Row{"Unique words", r.UniqueWords})
	tw.AppendRow(table.Row{"C_mean <f*r>", fmt.Sprintf("%.4f", r.CMean)})
	tw.AppendRow(table.Row{"C_opt (least squares)", fmt.Sprintf("%.4f", r.COpt)})
	tw.AppendRow(table.Row{"MSE", fmt.Sprintf("%.6e", r.MSE)})
	return tw.Render()
}

// Comparison renders both documents' estimator triples side by side. No
// "better fit" verdict is printed; that judgment is the reader's.
func Comparison(c *models.Comparison) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Document", "C_mean", "C_opt", "MSE", "Total", "Unique"})
	for _, r := range []*models.Result{c.First, c.Second} {
		tw.AppendRow(table.Row{
			r.Name,
			fmt.Sprintf("%.4f", r.CMean),
			fmt.Sprintf("%.4f", r.COpt),
			fmt.Sprintf("%.6e", r.MSE),
			r.TotalWords,
			r.UniqueWords,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	return tw.Render() + "\n"
}

// Failures lists the documents skipped during a corpus run.
func Failures(failed map[string]string, order []string) string {
	if len(failed) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Skipped document", "Reason"})
	for _, name := range order {
		if reason, ok := failed[name]; ok {
			tw.AppendRow(table.Row{name, reason})
		}
	}
	return tw.Render() + "\n"
}
