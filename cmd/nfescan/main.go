// Command nfescan converts every scanned document in an input directory
// into CSV files. It is a best-effort batch runner: unsupported or failing
// files are reported and skipped, and never affect the remaining files or
// the exit status.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/nfescan"
	"github.com/tsawler/nfescan/config"
	"github.com/tsawler/nfescan/ocr"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("nfescan: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("nfescan: create output directory: %v", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		log.Fatalf("nfescan: read input directory: %v", err)
	}

	opts := optionsFromConfig(cfg)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		convertFile(cfg, opts, entry.Name())
	}
}

// convertFile converts a single input file, reporting progress and failures
// to the operator. Failures never abort the batch.
func convertFile(cfg config.Config, opts nfescan.Options, name string) {
	input := filepath.Join(cfg.InputDir, name)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	output := filepath.Join(cfg.OutputDir, stem+".csv")

	converter, err := nfescan.NewConverter(input, output, opts)
	if errors.Is(err, nfescan.ErrUnsupportedFormat) {
		log.Printf("Unsupported file type: %s", name)
		return
	}
	if err != nil {
		log.Printf("Error converting %s: %v", name, err)
		return
	}

	log.Printf("Converting %s...", name)
	warnings, err := converter.Convert()
	for _, w := range warnings {
		log.Printf("Warning for %s: %s", name, w)
	}
	switch {
	case errors.Is(err, ocr.ErrOCRNotEnabled):
		// Without the ocr build tag nothing can be converted; stop instead
		// of reporting the same failure for every file.
		fmt.Fprintf(os.Stderr, "nfescan: %v\n", err)
		os.Exit(1)
	case err != nil:
		log.Printf("Error converting %s: %v", name, err)
	default:
		log.Printf("Successfully converted %s", name)
	}
}

// optionsFromConfig maps the file configuration onto conversion options.
// Empty noise-signature lists keep the built-in defaults.
func optionsFromConfig(cfg config.Config) nfescan.Options {
	opts := nfescan.DefaultOptions()
	if cfg.DPI > 0 {
		opts.DPI = cfg.DPI
	}
	opts.Language = cfg.Language
	if cfg.PageSegMode > 0 {
		opts.PageSegMode = ocr.PageSegMode(cfg.PageSegMode)
	}
	if len(cfg.NoisePrefixes) > 0 {
		opts.Parser.NoisePrefixes = cfg.NoisePrefixes
	}
	if len(cfg.SeparatorLines) > 0 {
		opts.Parser.SeparatorLines = cfg.SeparatorLines
	}
	if len(cfg.SeparatorPrefixes) > 0 {
		opts.Parser.SeparatorPrefixes = cfg.SeparatorPrefixes
	}
	return opts
}
