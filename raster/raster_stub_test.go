//go:build !ocr

package raster

import (
	"errors"
	"testing"
)

func TestPagesReturnsError(t *testing.T) {
	pages, err := Pages("document.pdf", 300)
	if !errors.Is(err, ErrRasterNotEnabled) {
		t.Errorf("expected ErrRasterNotEnabled, got %v", err)
	}
	if pages != nil {
		t.Errorf("expected nil pages, got %d", len(pages))
	}
}
