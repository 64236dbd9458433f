package tables

import (
	"errors"
	"testing"

	"github.com/rollcall-go/rollcall/model"
)

// makeTable builds a table from rows of cell text.
func makeTable(rows ...[]string) *model.Table {
	if len(rows) == 0 {
		return model.NewTable(0, 0)
	}
	t := model.NewTable(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, text := range row {
			t.Rows[i][j].Text = text
		}
	}
	return t
}

func TestMergeEmpty(t *testing.T) {
	_, _, err := Merge(nil)
	if !errors.Is(err, ErrNoTables) {
		t.Errorf("expected ErrNoTables, got %v", err)
	}

	_, _, err = Merge([]*model.Table{makeTable()})
	if !errors.Is(err, ErrNoTables) {
		t.Errorf("expected ErrNoTables for header-less tables, got %v", err)
	}
}

func TestMergeSingleTable(t *testing.T) {
	tbl := makeTable(
		[]string{"", "Course", "Date1"},
		[]string{"1", "CS101", "P"},
		[]string{"2", "MA201", "A"},
	)

	unified, stats, err := Merge([]*model.Table{tbl})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if stats != (MergeStats{}) {
		t.Errorf("expected clean merge, got %+v", stats)
	}

	if unified.RowCount() != 2 {
		t.Errorf("expected 2 data rows, got %d", unified.RowCount())
	}
	if unified.Rows[0][1] != "CS101" || unified.Rows[1][2] != "A" {
		t.Errorf("unexpected rows: %v", unified.Rows)
	}
}

func TestMergeRepeatedHeaderAcrossPages(t *testing.T) {
	// Two pages repeating the same header. The first column label is blank;
	// the second page's blank-labeled column is the repeated header bleed
	// and must be dropped from its data rows.
	page1 := makeTable(
		[]string{"", "Course", "Date1", "Date2"},
		[]string{"1", "CS101", "P", "A"},
		[]string{"2", "MA201", "A", "P"},
	)
	page2 := makeTable(
		[]string{"", "Course", "Date1", "Date2"},
		[]string{"3", "CS101", "P", "P"},
	)

	unified, _, err := Merge([]*model.Table{page1, page2})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	// Property: row count equals the sum of per-page data row counts
	if unified.RowCount() != 3 {
		t.Fatalf("expected 3 data rows, got %d", unified.RowCount())
	}

	if len(unified.Header) != 4 {
		t.Fatalf("expected canonical header width 4, got %d", len(unified.Header))
	}

	// Page 2's leading column was dropped, so its first cell is empty and
	// the remaining values are aligned to the canonical labels.
	last := unified.Rows[2]
	if last[0] != "" {
		t.Errorf("expected dropped leading cell, got %q", last[0])
	}
	if last[1] != "CS101" || last[2] != "P" || last[3] != "P" {
		t.Errorf("unexpected aligned row: %v", last)
	}
}

func TestMergeManyPagesRowCount(t *testing.T) {
	header := []string{"", "Course", "D1"}
	pages := make([]*model.Table, 4)
	wantRows := 0
	for p := range pages {
		rows := [][]string{header}
		for r := 0; r <= p; r++ {
			rows = append(rows, []string{"x", "CS101", "P"})
			wantRows++
		}
		pages[p] = makeTable(rows...)
	}

	unified, _, err := Merge(pages)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if unified.RowCount() != wantRows {
		t.Errorf("expected %d rows, got %d", wantRows, unified.RowCount())
	}
}

func TestMergeUnknownColumnDropped(t *testing.T) {
	page1 := makeTable(
		[]string{"", "Course", "Date1"},
		[]string{"1", "CS101", "P"},
	)
	page2 := makeTable(
		[]string{"", "Course", "Extra"},
		[]string{"2", "MA201", "X"},
	)

	unified, stats, err := Merge([]*model.Table{page1, page2})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if stats.DroppedColumns != 1 {
		t.Errorf("expected 1 dropped column, got %d", stats.DroppedColumns)
	}
	if unified.Rows[1][2] != "" {
		t.Errorf("value of unknown column should be discarded, got %q", unified.Rows[1][2])
	}
	if unified.Rows[1][1] != "MA201" {
		t.Errorf("known columns should still align, got %v", unified.Rows[1])
	}
}

func TestMergeSkipsNilAndEmptyTables(t *testing.T) {
	tbl := makeTable(
		[]string{"", "Course", "Date1"},
		[]string{"1", "CS101", "P"},
	)

	unified, _, err := Merge([]*model.Table{nil, model.NewTable(0, 0), tbl})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if unified.RowCount() != 1 {
		t.Errorf("expected 1 row, got %d", unified.RowCount())
	}
	if unified.Header[1] != "Course" {
		t.Errorf("canonical header should come from first non-empty table, got %v", unified.Header)
	}
}

func TestFitRowRepairs(t *testing.T) {
	var stats MergeStats

	padded := fitRow([]string{"a"}, 3, &stats)
	if len(padded) != 3 || padded[0] != "a" || padded[2] != "" {
		t.Errorf("unexpected padded row: %v", padded)
	}

	truncated := fitRow([]string{"a", "b", "c"}, 2, &stats)
	if len(truncated) != 2 {
		t.Errorf("unexpected truncated row: %v", truncated)
	}

	if stats.PaddedRows != 1 || stats.TruncatedRows != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
