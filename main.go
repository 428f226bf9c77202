package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"zipfstat/internal/analyze"
	"zipfstat/internal/compare"
)

func main() {
	app := &cli.App{
		Name:  "zipfstat",
		Usage: "estimate how closely word frequencies in a text corpus follow Zipf's law",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "fit the Zipf constant for every document in a corpus directory",
				Flags: append(commonFlags(),
					&cli.BoolFlag{
						Name:  "aggregate",
						Usage: "also fit the merged counts of the whole corpus",
					},
					&cli.StringFlag{
						Name:  "on-error",
						Value: "skip",
						Usage: "per-document failure policy: skip or abort",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 1,
						Usage: "documents analyzed concurrently",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Value: 20,
						Usage: "ranked words listed per document in table output",
					},
				),
				Action: analyze.Action,
			},
			{
				Name:  "compare",
				Usage: "fit two named documents and present the constants side by side",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "first",
						Required: true,
						Usage:    "first document name within the corpus directory",
					},
					&cli.StringFlag{
						Name:     "second",
						Required: true,
						Usage:    "second document name within the corpus directory",
					},
				),
				Action: compare.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "corpus",
			Required: true,
			Usage:    "directory holding the document files (.txt, .html)",
		},
		&cli.IntFlag{
			Name:  "top-n",
			Value: 200,
			Usage: "number of highest-frequency ranks the estimators see (0 = all)",
		},
		&cli.StringFlag{
			Name:  "stopwords",
			Usage: "YAML file with extra base stopwords and per-document overrides",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "table",
			Usage: "output format: table, json or yaml",
		},
		&cli.StringFlag{
			Name:  "plot-dir",
			Usage: "directory to write log-log PNG charts into",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "log errors only",
		},
	}
}
