// Package compare implements the `compare` command: Zipf fits for exactly two
// named documents, presented side by side.
package compare

import (
	"encoding/json"
	"fmt"

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

	cmp, err := analyzer.Compare(c.String("corpus"), c.String("first"), c.String("second"))
	if err != nil {
		return err
	}

	if plotDir := c.String("plot-dir"); plotDir != "" {
		for _, r := range []*models.Result{cmp.First, cmp.Second} {
			path, perr := plot.SaveLogLog(r, plotDir)
			if perr != nil {
				logger.Error("failed to render plot", "document", r.Name, "error", perr)
				continue
			}
			logger.Info("saved plot", "document", r.Name, "path", path)
		}
	}

	switch c.String("format") {
	case "json":
		data, err := json.MarshalIndent(cmp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(data))

	case "yaml":
		data, err := yaml.Marshal(cmp)
		if err != nil {
			return fmt.Errorf("failed to marshal comparison: %w", err)
		}
		fmt.Fprint(c.App.Writer, string(data))

	default:
		fmt.Fprint(c.App.Writer, report.Comparison(cmp))
	}

	return nil
}
