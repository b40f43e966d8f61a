// Package nfescan converts scanned fiscal documents (PDF or raster image)
// into CSV files. Each input is enhanced for OCR, recognized with
// Tesseract, and parsed into NFe-style listing rows: access key, document,
// number, date, status.
//
// Basic usage:
//
//	warnings, err := nfescan.Convert("input/listing.pdf", "output/listing.csv")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", nfescan.FormatWarnings(warnings))
//	}
//
// A PDF input produces one CSV per page, named with a _page{N} suffix;
// an image input produces a single CSV. Pages or images whose parsed table
// is empty produce no file at all.
//
// OCR and PDF rasterization are cgo features gated behind the "ocr" build
// tag; without it, Convert returns ocr.ErrOCRNotEnabled.
package nfescan

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"

	"github.com/tsawler/nfescan/enhance"
	"github.com/tsawler/nfescan/format"
	"github.com/tsawler/nfescan/ocr"
	"github.com/tsawler/nfescan/raster"
	"github.com/tsawler/nfescan/tables"
)

// Warning describes a non-fatal problem encountered while converting one
// input, such as a single PDF page that failed OCR. Warnings never stop
// processing of the remaining pages.
type Warning struct {
	// Page is the 1-indexed page number the warning relates to, or 0 when
	// the warning is not page-specific.
	Page int

	// Message describes the problem.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single printable string, one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// recognizeFunc turns encoded image data into recognized text.
type recognizeFunc func(imageData []byte) (string, error)

// rasterizeFunc renders a PDF into page images at the given DPI.
type rasterizeFunc func(path string, dpi int) ([]image.Image, error)

// Converter converts one input file into zero or more CSV files. Create one
// with NewConverter; the variant (single image or page-per-page document)
// is selected from the input extension.
type Converter struct {
	inputPath  string
	outputPath string
	format     format.Format
	options    Options
	parser     *tables.Parser

	// Pipeline stages, replaceable in tests.
	recognize recognizeFunc
	rasterize rasterizeFunc
}

// NewConverter selects the converter variant for inputPath and returns a
// Converter writing to outputPath (for PDFs, outputPath's stem names the
// per-page files). Returns ErrUnsupportedFormat when the extension maps to
// no variant; callers should report the file as skipped, not failed.
func NewConverter(inputPath, outputPath string, opts Options) (*Converter, error) {
	f := format.Detect(inputPath)
	if f == format.Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(inputPath))
	}

	parser := tables.NewParser()
	parser.Configure(opts.Parser)

	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		format:     f,
		options:    opts,
		parser:     parser,
		rasterize:  raster.Pages,
	}, nil
}

// Convert converts a single input file using default options. It is the
// one-call form of NewConverter followed by Converter.Convert.
func Convert(inputPath, outputPath string) ([]Warning, error) {
	c, err := NewConverter(inputPath, outputPath, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return c.Convert()
}

// Format returns the detected input format.
func (c *Converter) Format() format.Format {
	return c.format
}

// Convert runs the conversion. For a PDF it returns one warning per page
// that failed OCR or CSV writing; those pages produce no output file, and
// the remaining pages are still processed. A rasterization failure, an
// unreadable image, or an unavailable OCR engine aborts the whole input and
// is returned as the error.
func (c *Converter) Convert() ([]Warning, error) {
	recognize := c.recognize
	if recognize == nil {
		client, err := c.newClient()
		if err != nil {
			return nil, err
		}
		defer client.Close()
		recognize = client.RecognizeImage
	}

	switch c.format {
	case format.PDF:
		return c.convertDocument(recognize)
	case format.Image:
		return nil, c.convertImage(recognize)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.format)
	}
}

// newClient builds an OCR client configured from the converter options.
func (c *Converter) newClient() (*ocr.Client, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	if c.options.Language != "" {
		if err := client.SetLanguage(c.options.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("set language %q: %w", c.options.Language, err)
		}
	}
	if c.options.PageSegMode != ocr.PSM_SINGLE_BLOCK {
		if err := client.SetPageSegMode(c.options.PageSegMode); err != nil {
			client.Close()
			return nil, fmt.Errorf("set page segmentation mode %d: %w", c.options.PageSegMode, err)
		}
	}
	return client, nil
}

// convertImage handles the single-image variant: one input image, at most
// one output file.
func (c *Converter) convertImage(recognize recognizeFunc) error {
	img, err := decodeImage(c.inputPath)
	if err != nil {
		return err
	}

	table, err := c.processImage(img, recognize)
	if err != nil {
		return err
	}
	if table.Empty() {
		return nil
	}
	return WriteCSV(c.outputPath, table)
}

// convertDocument handles the PDF variant: rasterize all pages, then
// process each page independently. One page's failure or empty result never
// affects the others.
func (c *Converter) convertDocument(recognize recognizeFunc) ([]Warning, error) {
	pages, err := c.rasterize(c.inputPath, c.options.DPI)
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	for i, page := range pages {
		n := i + 1
		table, err := c.processImage(page, recognize)
		if err != nil {
			warnings = append(warnings, Warning{Page: n, Message: err.Error()})
			continue
		}
		if table.Empty() {
			continue
		}
		if err := WriteCSV(c.pageOutputPath(n), table); err != nil {
			warnings = append(warnings, Warning{Page: n, Message: err.Error()})
		}
	}
	return warnings, nil
}

// processImage runs one page image through the enhancement, OCR, and
// parsing stages.
func (c *Converter) processImage(img image.Image, recognize recognizeFunc) (*tables.Table, error) {
	enhanced := enhance.ForOCR(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, enhanced); err != nil {
		return nil, fmt.Errorf("encode enhanced image: %w", err)
	}

	text, err := recognize(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return c.parser.Parse(text), nil
}

// pageOutputPath derives the per-page output filename: the configured
// output stem with a _page{N} suffix, in the same directory.
func (c *Converter) pageOutputPath(page int) string {
	dir := filepath.Dir(c.outputPath)
	base := filepath.Base(c.outputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, fmt.Sprintf("%s_page%d.csv", stem, page))
}

// decodeImage reads and decodes a JPEG or PNG image from disk.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
