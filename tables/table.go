package tables

// CanonicalColumns holds the labels assigned when every row in a parsed
// table has exactly five fields: access key, document, number, date, status.
var CanonicalColumns = []string{"Chave de Acesso", "Documento", "Número", "Data", "Situação"}

// Table is an ordered sequence of rows, each row an ordered sequence of
// string fields. Rows may have different widths when some lines matched the
// strict record pattern and others fell back to whitespace splitting.
type Table struct {
	// Columns holds column labels, or nil when the table is positional.
	Columns []string

	// Rows holds the parsed records in input order.
	Rows [][]string
}

// Empty reports whether the table has no rows. Empty tables must never be
// written to an output file.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Width returns the widest row in the table, or 0 for an empty table.
func (t *Table) Width() int {
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Labeled reports whether column labels have been assigned.
func (t *Table) Labeled() bool {
	return len(t.Columns) > 0
}

// DropMissingColumns removes every column whose value is missing in all
// rows. A value is missing when the row is too short to reach the column or
// when the field is the empty string. Columns with at least one non-empty
// value are kept; rows are never dropped, even when every field they still
// hold is empty.
func (t *Table) DropMissingColumns() {
	width := t.Width()
	if width == 0 {
		return
	}

	keep := make([]int, 0, width)
	for c := 0; c < width; c++ {
		for _, row := range t.Rows {
			if c < len(row) && row[c] != "" {
				keep = append(keep, c)
				break
			}
		}
	}
	if len(keep) == width {
		return
	}

	for i, row := range t.Rows {
		next := make([]string, 0, len(keep))
		for _, c := range keep {
			if c < len(row) {
				next = append(next, row[c])
			}
		}
		t.Rows[i] = next
	}

	if t.Labeled() {
		labels := make([]string, 0, len(keep))
		for _, c := range keep {
			if c < len(t.Columns) {
				labels = append(labels, t.Columns[c])
			}
		}
		t.Columns = labels
	}
}
