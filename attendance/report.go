package attendance

import (
	"fmt"
	"strings"
)

// FormatReport renders the statistics as a fixed-template text report, one
// block per course in input order:
//
//	Course: CS101
//	Present: 3
//	Absent: 1
//	Total: 4
//	Percentage: 75.00%
//
// Lines within a block are newline-terminated and blocks follow each other
// directly. The function is pure: it performs no I/O and cannot fail for any
// input.
func FormatReport(stats []CourseStats) string {
	var sb strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&sb, "Course: %s\n", s.Course)
		fmt.Fprintf(&sb, "Present: %d\n", s.Present)
		fmt.Fprintf(&sb, "Absent: %d\n", s.Absent())
		fmt.Fprintf(&sb, "Total: %d\n", s.Lectures)
		fmt.Fprintf(&sb, "Percentage: %.2f%%\n", s.Percentage)
	}
	return sb.String()
}
