package model

import (
	"strings"
)

// Table represents one tabular region as detected on one PDF page. The first
// row is always the header row for that table, even when the header cells are
// blank or placeholder text.
type Table struct {
	Rows [][]Cell
	BBox BBox
	Page int // 1-indexed page the table was found on
}

// Cell represents a single table cell. An absent cell has empty Text.
type Cell struct {
	Text string
	BBox BBox
}

// NewTable creates an empty table with the given dimensions.
func NewTable(rows, cols int) *Table {
	t := &Table{Rows: make([][]Cell, rows)}
	for i := range t.Rows {
		t.Rows[i] = make([]Cell, cols)
	}
	return t
}

// RowCount returns the number of rows, including the header row.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// if the position is out of bounds.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// Header returns the text of the header row (row 0).
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.RowText(0)
}

// RowText returns the cell text of the given row.
func (t *Table) RowText(row int) []string {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	out := make([]string, len(t.Rows[row]))
	for j, cell := range t.Rows[row] {
		out[j] = cell.Text
	}
	return out
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			text := cell.Text
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to a markdown table, using row 0 as the
// header row.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []Cell) {
		for _, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[0])
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

// UnifiedTable is the result of merging per-page tables under one canonical
// header. Rows are aligned to the header by position: Rows[i][j] is the value
// of column Header[j].
type UnifiedTable struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows.
func (u *UnifiedTable) RowCount() int {
	return len(u.Rows)
}

// ColCount returns the number of columns in the canonical header.
func (u *UnifiedTable) ColCount() int {
	return len(u.Header)
}

// Records returns the rows as mappings from column name to cell value. When
// header labels repeat, the last column with a given label wins; positional
// access via Rows is the lossless view.
func (u *UnifiedTable) Records() []map[string]string {
	records := make([]map[string]string, len(u.Rows))
	for i, row := range u.Rows {
		rec := make(map[string]string, len(u.Header))
		for j, name := range u.Header {
			if j < len(row) {
				rec[name] = row[j]
			}
		}
		records[i] = rec
	}
	return records
}

// Column returns the values of the column at the given index, one per row.
// Rows shorter than the index contribute an empty string.
func (u *UnifiedTable) Column(i int) []string {
	out := make([]string, len(u.Rows))
	for r, row := range u.Rows {
		if i >= 0 && i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}
