// Package tables converts raw OCR text into tabular records.
//
// The parser targets NFe-style fiscal listings: each record is a 44-digit
// access key, a 14-digit document identifier, a document number, a date in
// DD/MM/YYYY form, and the literal approval status "Aprovado". Lines that
// match this shape anywhere yield one five-field row; lines that do not are
// split on runs of two or more spaces as a fallback, so a table may hold
// rows of uneven width.
//
// OCR output from scanned listings carries recurring junk: garbled header
// lines and separator artifacts. Which lines count as junk is controlled by
// [Config]:
//
//	parser := tables.NewParser()
//	config := tables.DefaultConfig()
//	config.NoisePrefixes = append(config.NoisePrefixes, "custom garble")
//	parser.Configure(config)
//	table := parser.Parse(text)
//
// The defaults match the header and separator misreads produced by
// Tesseract on the supported document template.
package tables
