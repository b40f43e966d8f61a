package nfescan

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/nfescan/tables"
)

// WriteCSV writes the table to path with every field quoted, fields
// separated by commas, and records separated by newlines. A header row is
// written only when the table carries column labels. Ragged rows are padded
// with empty fields to the table width so the output is rectangular.
//
// Callers are expected to skip empty tables; WriteCSV refuses to create a
// file for one.
func WriteCSV(path string, table *tables.Table) error {
	if table.Empty() {
		return fmt.Errorf("refusing to write empty table to %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	width := table.Width()
	if table.Labeled() {
		writeRecord(w, table.Columns, width)
	}
	for _, row := range table.Rows {
		writeRecord(w, row, width)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// writeRecord writes one CSV record padded to width fields, quoting every
// field regardless of content.
func writeRecord(w *bufio.Writer, fields []string, width int) {
	for i := 0; i < width; i++ {
		if i > 0 {
			w.WriteByte(',')
		}
		var field string
		if i < len(fields) {
			field = fields[i]
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
