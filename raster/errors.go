package raster

import "errors"

// ErrRasterize wraps failures reported by the PDF renderer. When a document
// fails to rasterize, none of its pages are processed.
var ErrRasterize = errors.New("pdf rasterization failed")
