package nfescan

import "errors"

// ErrUnsupportedFormat is returned by NewConverter when the input extension
// maps to no converter variant. It signals that the file should be skipped,
// not that processing failed.
var ErrUnsupportedFormat = errors.New("unsupported input format")
