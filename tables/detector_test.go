package tables

import (
	"testing"

	"github.com/rollcall-go/rollcall/model"
)

// frag builds a fragment with a width proportional to its text length,
// which approximates real glyph advances closely enough for detection.
func frag(text string, x, y float64) model.TextFragment {
	return model.TextFragment{
		Text:     text,
		X:        x,
		Y:        y,
		Width:    float64(len(text)) * 6,
		FontSize: 12,
	}
}

// attendancePageFragments lays out a small attendance table:
//
//	(blank)  Course   Date1  Date2
//	1        CS101    P      A
//	2        MA201    A      P
func attendancePageFragments() []model.TextFragment {
	return []model.TextFragment{
		frag("Course", 100, 700),
		frag("Date1", 220, 700),
		frag("Date2", 300, 700),

		frag("1", 50, 680),
		frag("CS101", 100, 680),
		frag("P", 220, 680),
		frag("A", 300, 680),

		frag("2", 50, 660),
		frag("MA201", 100, 660),
		frag("A", 220, 660),
		frag("P", 300, 660),
	}
}

func TestNewDetector(t *testing.T) {
	d := NewDetector()
	if d == nil {
		t.Fatal("NewDetector returned nil")
	}
	if d.config.RowTolerance != 3.0 {
		t.Errorf("expected RowTolerance 3.0, got %f", d.config.RowTolerance)
	}
	if d.config.MinRows != 2 || d.config.MinCols != 2 {
		t.Errorf("unexpected minimum dimensions: %d x %d", d.config.MinRows, d.config.MinCols)
	}
}

func TestConfigureRejectsInvalid(t *testing.T) {
	d := NewDetector()

	bad := DefaultConfig()
	bad.RowTolerance = 0
	if err := d.Configure(bad); err == nil {
		t.Error("expected error for zero RowTolerance")
	}

	bad = DefaultConfig()
	bad.MinCols = 0
	if err := d.Configure(bad); err == nil {
		t.Error("expected error for zero MinCols")
	}

	if err := d.Configure(DefaultConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDetectAttendanceTable(t *testing.T) {
	d := NewDetector()

	found := d.Detect(1, attendancePageFragments())
	if len(found) != 1 {
		t.Fatalf("expected 1 table, got %d", len(found))
	}

	tbl := found[0]
	if tbl.Page != 1 {
		t.Errorf("expected page 1, got %d", tbl.Page)
	}
	if tbl.RowCount() != 3 {
		t.Errorf("expected 3 rows, got %d", tbl.RowCount())
	}
	if tbl.ColCount() != 4 {
		t.Errorf("expected 4 cols, got %d", tbl.ColCount())
	}

	header := tbl.Header()
	want := []string{"", "Course", "Date1", "Date2"}
	for j, label := range want {
		if header[j] != label {
			t.Errorf("header[%d]: expected %q, got %q", j, label, header[j])
		}
	}

	if got := tbl.GetCell(1, 1).Text; got != "CS101" {
		t.Errorf("cell (1,1): expected CS101, got %q", got)
	}
	if got := tbl.GetCell(2, 3).Text; got != "P" {
		t.Errorf("cell (2,3): expected P, got %q", got)
	}
}

func TestDetectJoinsWordsWithinCell(t *testing.T) {
	d := NewDetector()

	fragments := []model.TextFragment{
		frag("Course", 100, 700),
		frag("Status", 250, 700),

		// "Operating" ends at x=154; "Systems" starts 3pt later, which is
		// word spacing, not a column gap
		frag("Operating", 100, 680),
		frag("Systems", 157, 680),
		frag("P", 250, 680),

		frag("Databases", 100, 660),
		frag("A", 250, 660),
	}

	found := d.Detect(1, fragments)
	if len(found) != 1 {
		t.Fatalf("expected 1 table, got %d", len(found))
	}

	if got := found[0].GetCell(1, 0).Text; got != "Operating Systems" {
		t.Errorf("expected joined cell text, got %q", got)
	}
	if found[0].ColCount() != 2 {
		t.Errorf("expected 2 cols, got %d", found[0].ColCount())
	}
}

func TestDetectSplitsDistantRegions(t *testing.T) {
	d := NewDetector()

	var fragments []model.TextFragment
	fragments = append(fragments, attendancePageFragments()...)
	// A second table far below the first
	fragments = append(fragments,
		frag("Course", 100, 400),
		frag("Status", 250, 400),
		frag("CS101", 100, 380),
		frag("P", 250, 380),
	)

	found := d.Detect(2, fragments)
	if len(found) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(found))
	}
	if found[0].ColCount() != 4 || found[1].ColCount() != 2 {
		t.Errorf("unexpected column counts: %d and %d", found[0].ColCount(), found[1].ColCount())
	}
}

func TestDetectDropsCaptionLines(t *testing.T) {
	d := NewDetector()

	fragments := []model.TextFragment{
		// Single-run title just above the table
		frag("Attendance Summary Spring Term", 100, 720),

		frag("Course", 100, 700),
		frag("Status", 250, 700),
		frag("CS101", 100, 680),
		frag("P", 250, 680),
	}

	found := d.Detect(1, fragments)
	if len(found) != 1 {
		t.Fatalf("expected 1 table, got %d", len(found))
	}
	if found[0].RowCount() != 2 {
		t.Errorf("expected title line to be dropped, got %d rows", found[0].RowCount())
	}
}

func TestDetectNothingOnProse(t *testing.T) {
	d := NewDetector()

	// Single-run paragraph lines never form a table
	fragments := []model.TextFragment{
		frag("This document summarizes the term.", 50, 700),
		frag("Attendance was generally good.", 50, 685),
	}

	if found := d.Detect(1, fragments); len(found) != 0 {
		t.Errorf("expected no tables in prose, got %d", len(found))
	}
}

func TestDetectEmptyInput(t *testing.T) {
	d := NewDetector()
	if found := d.Detect(1, nil); found != nil {
		t.Errorf("expected nil for empty input, got %v", found)
	}
}

func TestClusterValues(t *testing.T) {
	clustered := clusterValues([]float64{10, 11, 12, 50, 51, 100}, 3)
	if len(clustered) != 3 {
		t.Fatalf("expected 3 clusters, got %d: %v", len(clustered), clustered)
	}
}

func TestNearestColumn(t *testing.T) {
	cols := []float64{50, 100, 220}

	tests := []struct {
		x    float64
		want int
	}{
		{49, 0},
		{102, 1},
		{300, 2},
		{160, 1},
	}
	for _, tt := range tests {
		if got := nearestColumn(cols, tt.x); got != tt.want {
			t.Errorf("nearestColumn(%v): expected %d, got %d", tt.x, tt.want, got)
		}
	}
}
