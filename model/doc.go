// Package model defines the data types shared by the attendance pipeline.
//
// The types mirror the lifecycle of one report generation:
//
//   - [TextFragment] - a positioned run of text on a PDF page, produced by
//     the reader package and consumed by table detection
//   - [Table] - one tabular region as found on one page; the first row is
//     always that table's header row
//   - [UnifiedTable] - the result of merging the per-page tables under one
//     canonical header
//
// All values are ephemeral: they are produced and consumed within a single
// pipeline run and no state survives across runs.
//
// # Tables
//
// [Table] cells are plain strings; an absent cell is the empty string, never
// a missing entry. Tables carry export helpers (ToCSV, ToMarkdown) for
// debugging and downstream tooling.
//
// # Coordinate System
//
// Positions use PDF page coordinates: the origin is the bottom-left corner
// of the page and Y grows upward. A fragment's Y is its text baseline.
// [BBox] and [Point] support the layout calculations table detection needs.
package model
