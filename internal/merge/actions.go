// Package merge implements the merge command: cross-table deduplication
// of already-extracted phrase tables.
package merge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/owusus/newsphrases/models"
	"github.com/owusus/newsphrases/pkg/merger"
	"github.com/owusus/newsphrases/pkg/storage"
	"github.com/urfave/cli/v2"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	m := cfg.Merge
	if c.IsSet("input-dir") {
		m.InputDir = c.String("input-dir")
	}
	if c.IsSet("output") {
		m.OutputFile = c.String("output")
	}

	res, err := merger.Dir(m.InputDir, logger)
	if err != nil {
		logger.Error("merge failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d CSV files to merge...\n", len(res.Tables)+len(res.Skipped))
	for _, t := range res.Tables {
		fmt.Printf("  + Loaded %s: %d rows\n", filepath.Base(t.Path), t.Rows)
	}
	for _, p := range res.Skipped {
		fmt.Printf("  - Skipped %s\n", filepath.Base(p))
	}

	fmt.Printf("\nTotal rows before merging: %d\n", res.RowsRead)
	fmt.Printf("Total rows after merging duplicates: %d\n", len(res.Records))
	fmt.Printf("Duplicates merged: %d rows\n", res.RowsRead-len(res.Records))

	if err := storage.WritePhraseCSV(m.OutputFile, res.Records); err != nil {
		logger.Error("failed to write merged table", "error", err)
		os.Exit(2)
	}
	fmt.Printf("\nSaved merged result to: %s\n", m.OutputFile)

	fmt.Println("\nTop 10 phrases by total count:")
	for i, r := range res.Records {
		if i >= 10 {
			break
		}
		fmt.Printf("   %d. %q (count: %d, sources: %s)\n", i+1, r.Phrase, r.Count, r.CSVSource)
	}
	return nil
}
