// Package config loads configuration for the nfescan command from an
// optional YAML file. Every setting has a default, so the command runs
// without a config file at all; the file exists mainly so the OCR noise
// signatures can be tuned for other document templates without rebuilding.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the batch converter's settings.
type Config struct {
	// InputDir is scanned non-recursively for files to convert.
	InputDir string `mapstructure:"input_dir"`

	// OutputDir receives the CSV files; created if missing.
	OutputDir string `mapstructure:"output_dir"`

	// DPI is the rasterization resolution for PDF inputs.
	DPI int `mapstructure:"dpi"`

	// Language is the OCR language hint; empty uses the engine default.
	Language string `mapstructure:"language"`

	// PageSegMode is the OCR page segmentation mode (Tesseract --psm value).
	PageSegMode int `mapstructure:"page_seg_mode"`

	// NoisePrefixes, SeparatorLines, and SeparatorPrefixes override the
	// parser's noise-line signatures. Empty slices keep the defaults.
	NoisePrefixes     []string `mapstructure:"noise_prefixes"`
	SeparatorLines    []string `mapstructure:"separator_lines"`
	SeparatorPrefixes []string `mapstructure:"separator_prefixes"`
}

// Load reads nfescan.yaml from dir, falling back to defaults when the file
// does not exist. A malformed file is an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("nfescan")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("input_dir", "input")
	v.SetDefault("output_dir", "output")
	v.SetDefault("dpi", 300)
	v.SetDefault("language", "")
	v.SetDefault("page_seg_mode", 6)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
