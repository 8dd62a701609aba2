package main

import (
	"log"
	"os"

	"github.com/owusus/newsphrases/internal/extract"
	"github.com/owusus/newsphrases/internal/merge"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "newsphrases",
		Usage: "extract and aggregate noun phrases from news sentence datasets",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "extract noun phrases from CSV sentence datasets with per-article deduplication",
				Action: extract.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to the YAML config file",
					},
					&cli.StringFlag{
						Name:  "input-dir",
						Usage: "directory containing sentence CSVs (overrides config)",
					},
					&cli.StringFlag{
						Name:  "pattern",
						Usage: "glob pattern matching input files (overrides config)",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory for phrase tables (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "merge",
				Usage:  "merge extracted phrase tables into one deduplicated table",
				Action: merge.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to the YAML config file",
					},
					&cli.StringFlag{
						Name:  "input-dir",
						Usage: "directory of phrase tables to merge (overrides config)",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "path of the merged output table (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
