//go:build !ocr

// Package raster renders PDF pages to in-memory images for OCR.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Rebuild with -tags ocr to enable PDF rasterization via MuPDF.
package raster

import (
	"errors"
	"image"
)

// ErrRasterNotEnabled is returned when rasterization is requested but
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrRasterNotEnabled = errors.New("PDF rasterization not enabled; rebuild with -tags ocr")

// Pages returns an error indicating rasterization support is not enabled.
func Pages(path string, dpi int) ([]image.Image, error) {
	return nil, ErrRasterNotEnabled
}
