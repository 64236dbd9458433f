// Package tables detects tabular regions in the positioned text of PDF pages
// and merges per-page tables into one unified table.
//
// # Detection
//
// [Detector] reconstructs tables from text positions alone; it does not need
// drawn gridlines. The algorithm:
//
//  1. Group fragments into lines by baseline proximity
//  2. Join fragments within a line into cell runs, splitting on X gaps
//  3. Cluster consecutive lines into table regions
//  4. Derive column boundaries by clustering cell left edges across a region
//  5. Assign cell runs to (row, column) positions
//
// Behavior is controlled by [Config]:
//
//	cfg := tables.DefaultConfig()
//	cfg.MinRows = 3
//	d := tables.NewDetector()
//	d.Configure(cfg)
//
// # Merging
//
// [Merge] normalizes multi-page tables that repeat the same header row into
// a single [model.UnifiedTable]:
//
//   - the canonical header is the header row of the first table
//   - every table drops its own header row
//   - tables after the first drop columns whose label equals the canonical
//     header's first label, which models a repeated header-like value
//     bleeding across page breaks
//   - data rows are concatenated in page order and aligned to the canonical
//     header
//
// An empty table sequence is the caller-visible "PDF had no tables" case and
// yields [ErrNoTables].
package tables
