package nfescan

import (
	"github.com/tsawler/nfescan/ocr"
	"github.com/tsawler/nfescan/tables"
)

// Options holds configuration for a conversion.
type Options struct {
	// DPI is the rasterization resolution for PDF inputs.
	DPI int

	// Language is the OCR language hint (e.g. "por", "por+eng").
	// Empty means the engine default.
	Language string

	// PageSegMode is the OCR page segmentation mode. The default treats
	// each page as a single uniform block of text, which fits the tabular
	// listings this module targets.
	PageSegMode ocr.PageSegMode

	// Parser holds the noise-line signatures used during text parsing.
	Parser tables.Config
}

// DefaultOptions returns the conversion defaults: 300 DPI rasterization,
// single-block page segmentation, and the standard NFe noise signatures.
func DefaultOptions() Options {
	return Options{
		DPI:         300,
		PageSegMode: ocr.PSM_SINGLE_BLOCK,
		Parser:      tables.DefaultConfig(),
	}
}
