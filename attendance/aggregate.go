package attendance

import (
	"errors"
	"fmt"

	"github.com/rollcall-go/rollcall/model"
)

// ErrTooFewColumns indicates a table too narrow for the positional
// course/status contract.
var ErrTooFewColumns = errors.New("attendance: table needs at least two columns")

// CourseStats holds the aggregated attendance of one course.
type CourseStats struct {
	Course     string
	Present    int
	Lectures   int
	Percentage float64
}

// Absent returns the number of lectures the student missed.
func (s CourseStats) Absent() int {
	return s.Lectures - s.Present
}

// Aggregate groups the rows of a unified table by course and computes
// per-course presence statistics.
//
// The course name is read from column index 1 and the status symbol from the
// last column; see the package documentation for the positional contract.
// Rows whose status symbol is outside the {"P", "A"} vocabulary are handled
// according to policy. The returned skipped count is the number of rows
// excluded under [SkipRow].
//
// Courses appear in first-seen row order. Every group has at least one row
// by construction, so percentages are always well defined.
func Aggregate(table *model.UnifiedTable, policy Policy) (stats []CourseStats, skipped int, err error) {
	if table == nil || table.ColCount() < 2 {
		return nil, 0, ErrTooFewColumns
	}

	courseCol := 1
	statusCol := table.ColCount() - 1

	index := make(map[string]int)
	for r, row := range table.Rows {
		course := cellAt(row, courseCol)
		symbol := cellAt(row, statusCol)

		status, perr := ParseStatus(symbol)
		if perr != nil {
			switch policy {
			case TreatAbsent:
				status = StatusAbsent
			case SkipRow:
				skipped++
				continue
			default:
				return nil, 0, fmt.Errorf("row %d, course %q: %w", r+1, course, perr)
			}
		}

		i, seen := index[course]
		if !seen {
			i = len(stats)
			index[course] = i
			stats = append(stats, CourseStats{Course: course})
		}

		stats[i].Lectures++
		if status == StatusPresent {
			stats[i].Present++
		}
	}

	for i := range stats {
		stats[i].Percentage = 100 * float64(stats[i].Present) / float64(stats[i].Lectures)
	}
	return stats, skipped, nil
}

// cellAt returns the cell at index i, or an empty string for short rows.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
