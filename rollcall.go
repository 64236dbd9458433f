// Package rollcall provides a fluent API for turning tabular attendance
// PDFs into per-course reports and charts.
//
// Basic usage:
//
//	report, warnings, err := rollcall.Open("attendance.pdf").Report()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rollcall.FormatWarnings(warnings))
//	}
//	fmt.Println(report.Text)
//	// report.ChartPath points at the rendered bar chart; the caller owns
//	// the file and deletes it when done.
//
// With options:
//
//	report, _, err := rollcall.Open("attendance.pdf").
//	    Pages(1, 2).
//	    ChartFile("/tmp/out/chart.png").
//	    OnUnknownStatus(attendance.SkipRow).
//	    Report()
//
// For advanced use cases the lower-level reader, tables, attendance, and
// chart packages are also available; the pipeline is their composition.
package rollcall

import (
	"path/filepath"

	"github.com/rollcall-go/rollcall/reader"
)

// Open prepares a pipeline for the PDF file at path. The underlying file is
// opened lazily by the first terminal operation, which also closes it.
//
// Example:
//
//	report, warnings, err := rollcall.Open("attendance.pdf").Report()
func Open(path string) *Pipeline {
	return &Pipeline{
		filename: path,
		options:  defaultOptions(),
	}
}

// FromBytes prepares a pipeline over an in-memory PDF byte stream, such as a
// document downloaded on behalf of a chat user.
func FromBytes(data []byte) *Pipeline {
	return &Pipeline{
		data:    data,
		options: defaultOptions(),
	}
}

// FromReader creates a Pipeline from an already-opened reader.Reader. The
// caller keeps ownership of the reader and is responsible for closing it.
func FromReader(r *reader.Reader) *Pipeline {
	return &Pipeline{
		reader:       r,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// DefaultChartPath returns the chart file location used inside dir when no
// explicit chart file is configured.
func DefaultChartPath(dir string) string {
	return filepath.Join(dir, "attendance_chart.png")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustReport is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	report := rollcall.MustReport(rollcall.Open("attendance.pdf").Report())
func MustReport[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
