// Package analyze implements the `analyze` command: fit Zipf's law to every
// document in a corpus directory.
package analyze

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"zipfstat/internal/common"
	"zipfstat/models"
	"zipfstat/pkg/plot"
	"zipfstat/pkg/report"
)

func Action(c *cli.Context) error {
	logger := common.Logger(c)

	analyzer, err := common.NewAnalyzer(c, logger)
	if err != nil {
		return err
	}

	cr, err := analyzer.AnalyzeDir(c.String("corpus"), c.Bool("aggregate"))
	if err != nil {
		return err
	}

	names := cr.Names()
	sort.Strings(names)

	if plotDir := c.String("plot-dir"); plotDir != "" {
		savePlots(cr, names, plotDir, logger)
	}

	switch c.String("format") {
	case "json":
		data, err := json.MarshalIndent(cr, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(data))

	case "yaml":
		data, err := yaml.Marshal(cr)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprint(c.App.Writer, string(data))

	default:
		topK := c.Int("top-k")
		for _, name := range names {
			fmt.Fprint(c.App.Writer, report.Result(cr.Documents[name], topK))
		}
		if cr.Aggregate != nil {
			fmt.Fprint(c.App.Writer, report.Result(cr.Aggregate, topK))
		}

		failedNames := make([]string, 0, len(cr.Failed))
		for name := range cr.Failed {
			failedNames = append(failedNames, name)
		}
		sort.Strings(failedNames)
		fmt.Fprint(c.App.Writer, report.Failures(cr.Failed, failedNames))
	}

	return nil
}

// savePlots renders a chart per document. A failed render is logged and
// skipped; plots are a sink, not part of the analysis.
func savePlots(cr *models.CorpusReport, names []string, plotDir string, logger *slog.Logger) {
	render := func(r *models.Result) {
		path, err := plot.SaveLogLog(r, plotDir)
		if err != nil {
			logger.Error("failed to render plot", "document", r.Name, "error", err)
			return
		}
		logger.Info("saved plot", "document", r.Name, "path", path)
	}

	for _, name := range names {
		render(cr.Documents[name])
	}
	if cr.Aggregate != nil {
		render(cr.Aggregate)
	}
}
