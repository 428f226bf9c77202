// Package plot renders the log-log comparison of empirical rank frequencies
// against the fitted theoretical curve C_opt/r. Purely a sink: nothing here
// feeds back into the analysis.
package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"zipfstat/models"
)

// SaveLogLog writes a log-log chart for the result into dir, named after the
// document. Empirical relative frequencies are drawn as points, the
// theoretical curve as a line.
func SaveLogLog(r *models.Result, dir string) (string, error) {
	if len(r.Entries) == 0 {
		return "", fmt.Errorf("plot %s: no ranks to draw", r.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create plot directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Zipf's law: %s", r.Name)
	p.X.Label.Text = "rank (log r)"
	p.Y.Label.Text = "relative frequency (log f)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	empirical := make(plotter.XYs, len(r.Entries))
	theoretical := make(plotter.XYs, len(r.Entries))
	for i, e := range r.Entries {
		empirical[i].X = float64(e.Rank)
		empirical[i].Y = e.Freq
		theoretical[i].X = float64(e.Rank)
		theoretical[i].Y = e.Theoretical
	}

	points, err := plotter.NewScatter(empirical)
	if err != nil {
		return "", fmt.Errorf("plot %s: %w", r.Name, err)
	}
	line, err := plotter.NewLine(theoretical)
	if err != nil {
		return "", fmt.Errorf("plot %s: %w", r.Name, err)
	}

	p.Add(points, line)
	p.Legend.Add("empirical", points)
	p.Legend.Add(fmt.Sprintf("C_opt/r, C_opt=%.4f", r.COpt), line)

	path := filepath.Join(dir, safeName(r.Name)+".png")
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save plot for %s: %w", r.Name, err)
	}
	return path, nil
}

func safeName(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}
