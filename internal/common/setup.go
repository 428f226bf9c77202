// Package common holds the shared CLI-to-analyzer wiring used by every
// command action.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"zipfstat/pkg/corpus"
	"zipfstat/pkg/langid"
	"zipfstat/pkg/stopwords"
	"zipfstat/pkg/textload"
)

// Logger builds the run logger: JSON to stderr, errors only under --quiet.
func Logger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// NewAnalyzer assembles the pipeline from command flags.
func NewAnalyzer(c *cli.Context, logger *slog.Logger) (*corpus.Analyzer, error) {
	stopCfg := stopwords.NewConfig()
	if path := c.String("stopwords"); path != "" {
		loaded, err := stopwords.LoadFile(path)
		if err != nil {
			return nil, err
		}
		stopCfg = loaded
	}

	policy, err := corpus.ParsePolicy(c.String("on-error"))
	if err != nil {
		return nil, err
	}

	topN := c.Int("top-n")
	if topN < 0 {
		return nil, fmt.Errorf("top-n must not be negative, got %d", topN)
	}

	return &corpus.Analyzer{
		Loader:    textload.NewLoader(),
		Stopwords: stopCfg,
		Detector:  langid.NewDetector(),
		TopN:      topN,
		Workers:   c.Int("workers"),
		OnError:   policy,
		Logger:    logger,
	}, nil
}
