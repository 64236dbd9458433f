package rollcall

import (
	"github.com/rollcall-go/rollcall/attendance"
	"github.com/rollcall-go/rollcall/tables"
)

// ReportOptions holds configuration for one pipeline run.
type ReportOptions struct {
	// Page selection (1-indexed in API, stored as-is; nil means all pages)
	pages []int

	// Chart output file; empty means DefaultChartPath(os.TempDir())
	chartPath string

	// Policy for status symbols outside the known vocabulary
	policy attendance.Policy

	// Table detection tuning
	detector tables.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() ReportOptions {
	return ReportOptions{
		pages:     nil,
		chartPath: "",
		policy:    attendance.Reject,
		detector:  tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ReportOptions.
func (o ReportOptions) clone() ReportOptions {
	newOpts := ReportOptions{
		chartPath: o.chartPath,
		policy:    o.policy,
		detector:  o.detector,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
