package tables

import (
	"errors"

	"github.com/rollcall-go/rollcall/model"
)

// ErrNoTables indicates that the document contained no extractable tables.
var ErrNoTables = errors.New("tables: no tables found in document")

// MergeStats reports the row and column repairs performed during a merge.
// Non-zero values indicate the pages did not share an identical layout.
type MergeStats struct {
	// Rows shorter than their table's header, padded with empty cells
	PaddedRows int

	// Rows longer than their table's header, truncated
	TruncatedRows int

	// Columns of later tables whose label does not appear in the canonical
	// header and whose values were therefore discarded
	DroppedColumns int
}

// Merge normalizes a sequence of per-page tables that repeat the same header
// row into one unified table.
//
// The canonical header is the header row of the first non-empty table. Every
// table drops its own header row (row 0). Tables after the first additionally
// drop columns whose own header label equals the canonical header's first
// column label: when a table breaks across pages, the leading header-like
// value repeats on every page and must not be carried into the data twice.
// Remaining columns of later tables are aligned to the canonical header by
// label, and data rows are concatenated in page order.
//
// Merge fails with ErrNoTables when no non-empty table is supplied.
func Merge(raw []*model.Table) (*model.UnifiedTable, MergeStats, error) {
	var stats MergeStats

	tables := make([]*model.Table, 0, len(raw))
	for _, t := range raw {
		if t != nil && t.RowCount() > 0 {
			tables = append(tables, t)
		}
	}
	if len(tables) == 0 {
		return nil, stats, ErrNoTables
	}

	canonical := tables[0].Header()
	unified := &model.UnifiedTable{Header: canonical}

	// Label -> canonical position, first occurrence wins
	position := make(map[string]int, len(canonical))
	for i, label := range canonical {
		if _, seen := position[label]; !seen {
			position[label] = i
		}
	}

	for ti, t := range tables {
		if ti == 0 {
			for r := 1; r < t.RowCount(); r++ {
				unified.Rows = append(unified.Rows, fitRow(t.RowText(r), len(canonical), &stats))
			}
			continue
		}

		// Map each kept column of this table to its canonical position.
		own := t.Header()
		colTo := make([]int, len(own))
		for j, label := range own {
			switch {
			case label == canonical[0]:
				colTo[j] = -1 // repeated header bleed, drop
			default:
				idx, ok := position[label]
				if !ok {
					stats.DroppedColumns++
					idx = -1
				}
				colTo[j] = idx
			}
		}

		for r := 1; r < t.RowCount(); r++ {
			row := t.RowText(r)
			out := make([]string, len(canonical))
			switch {
			case len(row) < len(own):
				stats.PaddedRows++
			case len(row) > len(own):
				stats.TruncatedRows++
			}
			for j, idx := range colTo {
				if idx >= 0 && j < len(row) {
					out[idx] = row[j]
				}
			}
			unified.Rows = append(unified.Rows, out)
		}
	}

	return unified, stats, nil
}

// fitRow pads or truncates a row to the given width, recording the repair.
func fitRow(row []string, width int, stats *MergeStats) []string {
	switch {
	case len(row) == width:
		return row
	case len(row) < width:
		stats.PaddedRows++
		out := make([]string, width)
		copy(out, row)
		return out
	default:
		stats.TruncatedRows++
		return row[:width]
	}
}
