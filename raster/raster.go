//go:build ocr

// Package raster renders PDF pages to in-memory images for OCR.
//
// Rendering is backed by MuPDF via go-fitz. The package shares the "ocr"
// build tag with the OCR engine, since rasterized pages are only ever fed
// to OCR; without the tag a stub implementation is compiled that returns
// ErrRasterNotEnabled.
package raster

import (
	"fmt"
	"image"

	fitz "github.com/gen2brain/go-fitz"
)

// Pages renders every page of the PDF at the given DPI and returns the
// images in page order (index 0 is page 1). Failures satisfy
// errors.Is(err, ErrRasterize).
func Pages(path string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrRasterize, path, err)
	}
	defer doc.Close()

	pages := make([]image.Image, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRasterize, i+1, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
