// Package chart renders per-course attendance statistics as a bar chart
// image.
//
// The visual contract is fixed: one bar per course in input order, bar height
// equal to the attendance percentage, the percentage printed above each bar,
// a y axis clamped to [0, 110] with horizontal gridlines, rotated x axis
// labels, and the title "Attendance Report". The output format follows the
// file extension; PNG is the expected choice.
//
// Rendering an empty statistics slice fails with [ErrNoData] and does not
// create or overwrite the output file. The caller owns the lifecycle of the
// written file.
package chart
