// Package extract implements the extract command: per-table noun-phrase
// extraction with per-article deduplication.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/owusus/newsphrases/models"
	"github.com/owusus/newsphrases/pkg/chunker"
	"github.com/owusus/newsphrases/pkg/dataset"
	"github.com/owusus/newsphrases/pkg/db"
	"github.com/owusus/newsphrases/pkg/detector"
	"github.com/owusus/newsphrases/pkg/phrases"
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
	ex := cfg.Extract
	if c.IsSet("input-dir") {
		ex.InputDir = c.String("input-dir")
	}
	if c.IsSet("pattern") {
		ex.Pattern = c.String("pattern")
	}
	if c.IsSet("output-dir") {
		ex.OutputDir = c.String("output-dir")
	}

	paths, err := dataset.Discover(ex.InputDir, ex.Pattern)
	if err != nil {
		logger.Error("no input tables", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d CSV files to process:\n", len(paths))
	for _, p := range paths {
		fmt.Printf("   - %s\n", filepath.Base(p))
	}

	store, err := storage.New(ex.OutputDir)
	if err != nil {
		logger.Error("failed to prepare output directory", "error", err)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open run-history database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runID, err := database.BeginRun(ex.InputDir, ex.Pattern, ex.OutputDir)
	if err != nil {
		logger.Error("failed to record run", "error", err)
		os.Exit(2)
	}

	ch := chunker.NewProse()
	stop := chunker.StopWords()
	langs := detector.New()
	fmt.Printf("Loaded %d stop words\n", len(stop))

	var allTables [][]models.PhraseRecord
	var summary []models.DatasetStats

	for _, path := range paths {
		banner(fmt.Sprintf("Processing: %s", filepath.Base(path)))

		recs, st, err := processTable(path, ex.Columns, ch, stop, langs, store)
		if err != nil {
			var missing *dataset.MissingColumnsError
			if errors.As(err, &missing) {
				logger.Warn("skipping table: missing columns",
					"path", path, "columns", strings.Join(missing.Columns, ", "))
			} else {
				logger.Warn("skipping table", "path", path, "error", err)
			}
			continue
		}

		if err := database.RecordTable(runID, st); err != nil {
			logger.Warn("failed to record table stats", "path", path, "error", err)
		}

		printTableReport(st, recs)
		allTables = append(allTables, recs)
		summary = append(summary, st)
	}

	banner("COMBINING ALL RESULTS")

	var combined []models.PhraseRecord
	if len(allTables) > 0 {
		combined = phrases.Combine(allTables)
		combinedPath, err := store.WritePhraseTable(storage.CombinedFileName, combined)
		if err != nil {
			logger.Error("failed to write combined table", "error", err)
			os.Exit(2)
		}
		fmt.Printf("\nCombined results saved to: %s\n", combinedPath)
		fmt.Printf("Total unique noun phrases across all CSVs: %d\n", len(combined))
		fmt.Printf("Total phrase occurrences across all CSVs: %d\n", phrases.TotalOccurrences(combined))
		printTopCombined(combined, 10)
	} else {
		logger.Warn("no usable input tables; skipping combined output")
	}

	summaryPath, err := store.WriteSummary(storage.SummaryFileName, summary)
	if err != nil {
		logger.Error("failed to write summary", "error", err)
		os.Exit(2)
	}
	fmt.Printf("\nSummary stats saved to: %s\n", summaryPath)

	if err := database.FinishRun(runID, len(summary), len(combined), phrases.TotalOccurrences(combined)); err != nil {
		logger.Warn("failed to record run completion", "error", err)
	}

	banner("PROCESSING COMPLETE")
	return nil
}

// processTable runs the full extraction pipeline for one input table:
// read, group into articles, chunk, aggregate, write, summarize.
func processTable(path string, cols models.Columns, ch chunker.Chunker,
	stop map[string]struct{}, langs *detector.Detector, store *storage.Storage,
) ([]models.PhraseRecord, models.DatasetStats, error) {
	ds, err := dataset.Read(path, cols)
	if err != nil {
		return nil, models.DatasetStats{}, err
	}

	keys, groups := ds.Articles()
	fmt.Printf("Total sentences: %d\n", len(ds.Rows))
	fmt.Printf("Unique articles: %d\n", len(keys))

	table := phrases.NewCounter()
	for _, k := range keys {
		article, err := phrases.ExtractArticle(ch, groups[k], stop)
		if err != nil {
			return nil, models.DatasetStats{}, err
		}
		table.Merge(article)
	}

	recs := table.Records(ds.Name)
	out, err := store.WritePhraseTable(ds.Name+storage.PhraseTableSuffix, recs)
	if err != nil {
		return nil, models.DatasetStats{}, err
	}

	st := phrases.Stats(path, ds.Name, len(ds.Rows), len(keys), recs, out)
	st.Language = langs.DominantLanguage(ds.Sentences())
	return recs, st, nil
}

func printTableReport(st models.DatasetStats, recs []models.PhraseRecord) {
	fmt.Printf("\nStats for %s:\n", st.CSVName)
	fmt.Printf("   - Sentences processed: %d\n", st.TotalSentences)
	fmt.Printf("   - Articles (unique title+date): %d\n", st.TotalArticles)
	fmt.Printf("   - Unique noun phrases: %d\n", st.UniquePhrases)
	fmt.Printf("   - Total phrase occurrences: %d\n", st.TotalOccurrences)
	fmt.Printf("   - Avg unique phrases per article: %.2f\n", st.AvgPhrasesPerArticle)
	fmt.Printf("   - Language: %s\n", st.Language)
	fmt.Printf("   - Top 5 phrases:\n")
	for i, r := range recs {
		if i >= 5 {
			break
		}
		fmt.Printf("      * %q (count: %d)\n", r.Phrase, r.Count)
	}
	fmt.Printf("Saved to: %s\n", st.OutputFile)
}

func printTopCombined(recs []models.PhraseRecord, n int) {
	fmt.Printf("\nTop %d most frequent noun phrases (overall):\n", n)
	for i, r := range recs {
		if i >= n {
			break
		}
		fmt.Printf("   %d. %q (count: %d, sources: %s)\n", i+1, r.Phrase, r.Count, r.CSVSource)
	}
}

func banner(title string) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n%s\n%s\n", line, title, line)
}
