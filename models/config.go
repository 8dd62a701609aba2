// Package models defines data structures for configuration and phrase tables.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Columns names the dataset columns the extractor reads. Text, Title and
// Date are required in every input table; URL is optional.
type Columns struct {
	Text  string `yaml:"text"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	URL   string `yaml:"url"`
}

// ExtractConfig holds runtime configuration for the extract command.
// Values come from config.yaml, with CLI flags taking precedence.
type ExtractConfig struct {
	InputDir  string  `yaml:"input_dir"`
	Pattern   string  `yaml:"pattern"`
	OutputDir string  `yaml:"output_dir"`
	Columns   Columns `yaml:"columns"`
}

// MergeConfig holds runtime configuration for the merge command.
type MergeConfig struct {
	InputDir   string `yaml:"input_dir"`
	OutputFile string `yaml:"output_file"`
}

// Config is the top-level config.yaml document.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Merge   MergeConfig   `yaml:"merge"`
}

// DefaultConfig returns the built-in defaults applied before any config
// file or flag is read.
func DefaultConfig() Config {
	return Config{
		Extract: ExtractConfig{
			InputDir:  "sentence-datasets",
			Pattern:   "*.csv",
			OutputDir: "noun-phrases",
			Columns: Columns{
				Text:  "sentence",
				Title: "title",
				Date:  "date",
				URL:   "url",
			},
		},
		Merge: MergeConfig{
			InputDir:   "noun-phrases",
			OutputFile: "merged_phrases.csv",
		},
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Extract.Columns.Text == "" {
		cfg.Extract.Columns.Text = "sentence"
	}
	if cfg.Extract.Columns.Title == "" {
		cfg.Extract.Columns.Title = "title"
	}
	if cfg.Extract.Columns.Date == "" {
		cfg.Extract.Columns.Date = "date"
	}

	return cfg, nil
}
