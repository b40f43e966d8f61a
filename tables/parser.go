package tables

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// recordPattern matches one NFe listing record anywhere within a line:
// 44-digit access key, 14-digit document, document number, DD/MM/YYYY date,
// and the literal approval status. Trailing garbage on the line is ignored.
var recordPattern = regexp.MustCompile(`(\d{44})\s+(\d{14})\s+(\d+)\s+(\d{2}/\d{2}/\d{4})\s+(Aprovado)`)

// fieldGap separates fields on lines that do not match recordPattern.
// A single space can occur inside a field, so only runs of two or more
// whitespace characters split.
var fieldGap = regexp.MustCompile(`\s{2,}`)

// Config controls which lines the parser discards as OCR noise before
// attempting field extraction. The defaults are specific to one document
// template as misread by one OCR configuration; they are exposed here so
// other templates can supply their own signatures.
type Config struct {
	// NoisePrefixes drops any line beginning with one of these strings.
	// The default is the garbled column-header line Tesseract produces for
	// the supported listing template.
	NoisePrefixes []string

	// SeparatorLines drops lines exactly equal to one of these strings.
	SeparatorLines []string

	// SeparatorPrefixes drops any line beginning with one of these strings.
	SeparatorPrefixes []string
}

// DefaultConfig returns the noise signatures for the supported NFe listing
// template.
func DefaultConfig() Config {
	return Config{
		NoisePrefixes:     []string{"a ane em lI Ni NR"},
		SeparatorLines:    []string{"—_— apace,"},
		SeparatorPrefixes: []string{"—_—"},
	}
}

// Parser converts raw OCR text into a Table.
type Parser struct {
	config Config
}

// NewParser creates a parser with the default noise configuration.
func NewParser() *Parser {
	return &Parser{config: DefaultConfig()}
}

// Configure replaces the parser's noise configuration.
func (p *Parser) Configure(config Config) {
	p.config = config
}

// Parse extracts tabular records from raw OCR text. Lines are trimmed,
// empty and noise lines are dropped, and each remaining line yields at most
// one row: the five captured groups when the strict record pattern matches,
// or the non-empty fields from a whitespace split otherwise. When every row
// has exactly five fields the canonical column labels are assigned, then
// columns that are missing in all rows are removed. The returned table may
// be empty.
func (p *Parser) Parse(text string) *Table {
	// Tesseract may emit decomposed accents; normalize so signature and
	// field comparisons see composed forms.
	text = norm.NFC.String(text)

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || p.drop(line) {
			continue
		}

		if m := recordPattern.FindStringSubmatch(line); m != nil {
			rows = append(rows, m[1:])
			continue
		}

		var fields []string
		for _, f := range fieldGap.Split(line, -1) {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) > 0 {
			rows = append(rows, fields)
		}
	}

	if len(rows) == 0 {
		return &Table{}
	}

	t := &Table{Rows: rows}
	if uniform(rows, len(CanonicalColumns)) {
		t.Columns = append([]string(nil), CanonicalColumns...)
	}
	t.DropMissingColumns()
	return t
}

// drop reports whether the line matches a configured noise signature.
func (p *Parser) drop(line string) bool {
	for _, prefix := range p.config.NoisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	for _, sep := range p.config.SeparatorLines {
		if line == sep {
			return true
		}
	}
	for _, prefix := range p.config.SeparatorPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// uniform reports whether every row has exactly n fields.
func uniform(rows [][]string, n int) bool {
	for _, row := range rows {
		if len(row) != n {
			return false
		}
	}
	return true
}
