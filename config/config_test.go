package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InputDir != "input" {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, "input")
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "output")
	}
	if cfg.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.DPI)
	}
	if cfg.PageSegMode != 6 {
		t.Errorf("PageSegMode = %d, want 6", cfg.PageSegMode)
	}
	if cfg.Language != "" {
		t.Errorf("Language = %q, want empty", cfg.Language)
	}
	if len(cfg.NoisePrefixes) != 0 {
		t.Errorf("NoisePrefixes = %v, want empty", cfg.NoisePrefixes)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
input_dir: scans
output_dir: csv
dpi: 150
language: por
noise_prefixes:
  - "garbled header"
separator_lines:
  - "----"
`
	if err := os.WriteFile(filepath.Join(dir, "nfescan.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.InputDir != "scans" || cfg.OutputDir != "csv" {
		t.Errorf("dirs = %q, %q, want scans, csv", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.DPI)
	}
	if cfg.Language != "por" {
		t.Errorf("Language = %q, want por", cfg.Language)
	}
	if !reflect.DeepEqual(cfg.NoisePrefixes, []string{"garbled header"}) {
		t.Errorf("NoisePrefixes = %v", cfg.NoisePrefixes)
	}
	if !reflect.DeepEqual(cfg.SeparatorLines, []string{"----"}) {
		t.Errorf("SeparatorLines = %v", cfg.SeparatorLines)
	}
	// Unset key keeps its default.
	if cfg.PageSegMode != 6 {
		t.Errorf("PageSegMode = %d, want default 6", cfg.PageSegMode)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nfescan.yaml"), []byte("input_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}
