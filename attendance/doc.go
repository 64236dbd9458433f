// Package attendance turns a unified attendance table into per-course
// statistics and a text report.
//
// # Column Contract
//
// Column selection is positional, not name-based: the second column (index 1)
// holds the course name and the last column holds the status symbol. Header
// text in the source documents is known to be unreliable placeholder content,
// so it is never consulted. The contract is part of the expected report
// layout and [Aggregate] enforces it by requiring at least two columns.
//
// # Status Symbols
//
// The status vocabulary is exactly "P" (present) and "A" (absent). What
// happens to any other symbol is governed by [Policy]:
//
//   - [Reject] (default) - aggregation fails with an error wrapping
//     [ErrUnknownStatus]; a corrupt symbol never silently skews a percentage
//   - [TreatAbsent] - the lecture is counted but not the presence
//   - [SkipRow] - the row is excluded from both counts
//
// # Ordering
//
// [Aggregate] returns one [CourseStats] per distinct course in first-seen
// row order, so reports and charts are deterministic for a given document.
package attendance
