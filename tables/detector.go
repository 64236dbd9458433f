package tables

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rollcall-go/rollcall/model"
)

// Config holds detector configuration. All distances are in PDF points.
type Config struct {
	// Maximum baseline distance for fragments to share a line
	RowTolerance float64

	// Maximum horizontal gap joining adjacent fragments into one cell run.
	// For large fonts the effective threshold grows with the font size so
	// that ordinary word spacing never splits a cell.
	CellGapMax float64

	// Tolerance when clustering cell left edges into column boundaries
	ColTolerance float64

	// Vertical gap between lines that starts a new table region
	RegionGap float64

	// Minimum rows (including the header row) for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		RowTolerance: 3.0,
		CellGapMax:   5.0,
		ColTolerance: 5.0,
		RegionGap:    50.0,
		MinRows:      2,
		MinCols:      2,
	}
}

// Detector finds tabular regions in the positioned text of a page.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// Configure sets the detector configuration.
func (d *Detector) Configure(config Config) error {
	if config.RowTolerance <= 0 || config.ColTolerance <= 0 {
		return fmt.Errorf("tables: tolerances must be positive, got row %v col %v",
			config.RowTolerance, config.ColTolerance)
	}
	if config.MinRows < 1 || config.MinCols < 1 {
		return fmt.Errorf("tables: MinRows and MinCols must be at least 1, got %d and %d",
			config.MinRows, config.MinCols)
	}
	d.config = config
	return nil
}

// cellRun is a horizontal run of fragments merged into one candidate cell.
type cellRun struct {
	text string
	bbox model.BBox
}

// textLine is a baseline-aligned group of cell runs.
type textLine struct {
	y    float64
	runs []cellRun
}

// Detect finds tables among the fragments of one page. The page number is
// recorded on the returned tables. Returning no tables is a valid outcome,
// not an error.
func (d *Detector) Detect(page int, fragments []model.TextFragment) []*model.Table {
	if len(fragments) == 0 {
		return nil
	}

	lines := d.groupLines(fragments)
	regions := d.groupRegions(lines)

	var tables []*model.Table
	for _, region := range regions {
		if table := d.tableFromRegion(region); table != nil {
			table.Page = page
			tables = append(tables, table)
		}
	}
	return tables
}

// groupLines clusters fragments by baseline and merges each line's fragments
// into cell runs.
func (d *Detector) groupLines(fragments []model.TextFragment) []textLine {
	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)

	// Sort top to bottom, then left to right
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []textLine
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[start].Y-sorted[i].Y <= d.config.RowTolerance {
			continue
		}
		group := sorted[start:i]
		sort.Slice(group, func(a, b int) bool { return group[a].X < group[b].X })
		lines = append(lines, textLine{
			y:    group[0].Y,
			runs: d.mergeRuns(group),
		})
		start = i
	}
	return lines
}

// mergeRuns joins adjacent fragments of one line into cell runs. A gap wider
// than the cell-gap threshold starts a new run; smaller gaps join with a
// space when they are wide enough to represent word spacing.
func (d *Detector) mergeRuns(line []model.TextFragment) []cellRun {
	var runs []cellRun
	var cur cellRun

	for i, frag := range line {
		if i == 0 {
			cur = cellRun{text: frag.Text, bbox: frag.BBox()}
			continue
		}

		gap := frag.Left() - cur.bbox.Right()
		if gap > d.cellGapThreshold(frag.FontSize) {
			runs = append(runs, cur)
			cur = cellRun{text: frag.Text, bbox: frag.BBox()}
			continue
		}

		if gap > frag.FontSize*0.2 && !strings.HasSuffix(cur.text, " ") {
			cur.text += " "
		}
		cur.text += frag.Text
		cur.bbox = cur.bbox.Union(frag.BBox())
	}
	runs = append(runs, cur)
	return runs
}

// cellGapThreshold returns the gap above which two fragments belong to
// different cells.
func (d *Detector) cellGapThreshold(fontSize float64) float64 {
	return math.Max(d.config.CellGapMax, fontSize*0.4)
}

// groupRegions clusters consecutive lines into table regions. Lines separated
// by more than RegionGap vertically start a new region.
func (d *Detector) groupRegions(lines []textLine) [][]textLine {
	if len(lines) == 0 {
		return nil
	}

	var regions [][]textLine
	current := []textLine{lines[0]}

	for _, line := range lines[1:] {
		prev := current[len(current)-1]
		if prev.y-line.y > d.config.RegionGap {
			regions = append(regions, current)
			current = []textLine{line}
		} else {
			current = append(current, line)
		}
	}
	regions = append(regions, current)
	return regions
}

// tableFromRegion builds a table from a region of lines, or returns nil when
// the region does not look tabular.
func (d *Detector) tableFromRegion(region []textLine) *model.Table {
	region = trimScalarLines(region)
	if len(region) < d.config.MinRows {
		return nil
	}

	cols := d.columnBoundaries(region)
	if len(cols) < d.config.MinCols {
		return nil
	}

	table := model.NewTable(len(region), len(cols))
	for i, line := range region {
		for _, run := range line.runs {
			j := nearestColumn(cols, run.bbox.Left())
			cell := table.GetCell(i, j)
			if cell.Text != "" {
				cell.Text += " "
			}
			cell.Text += run.text
			if cell.BBox.IsEmpty() {
				cell.BBox = run.bbox
			} else {
				cell.BBox = cell.BBox.Union(run.bbox)
			}
			if table.BBox.IsEmpty() {
				table.BBox = run.bbox
			} else {
				table.BBox = table.BBox.Union(run.bbox)
			}
		}
	}
	return table
}

// trimScalarLines drops leading and trailing single-run lines from a region.
// Those are captions or titles that happen to sit close to the table, not
// table rows.
func trimScalarLines(region []textLine) []textLine {
	for len(region) > 0 && len(region[0].runs) < 2 {
		region = region[1:]
	}
	for len(region) > 0 && len(region[len(region)-1].runs) < 2 {
		region = region[:len(region)-1]
	}
	return region
}

// columnBoundaries clusters the left edges of all cell runs in a region into
// column start positions, sorted left to right.
func (d *Detector) columnBoundaries(region []textLine) []float64 {
	var edges []float64
	for _, line := range region {
		for _, run := range line.runs {
			edges = append(edges, run.bbox.Left())
		}
	}
	sort.Float64s(edges)
	return clusterValues(edges, d.config.ColTolerance)
}

// clusterValues clusters nearby sorted values within the given tolerance,
// averaging values that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}
	for _, v := range values[1:] {
		last := clustered[len(clustered)-1]
		if v-last > tolerance {
			clustered = append(clustered, v)
		} else {
			clustered[len(clustered)-1] = (last + v) / 2
		}
	}
	return clustered
}

// nearestColumn returns the index of the boundary closest to x.
func nearestColumn(cols []float64, x float64) int {
	best := 0
	bestDist := math.Abs(cols[0] - x)
	for i, c := range cols[1:] {
		if dist := math.Abs(c - x); dist < bestDist {
			best = i + 1
			bestDist = dist
		}
	}
	return best
}
