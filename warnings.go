package rollcall

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while producing a report.
// Warnings indicate that processing succeeded but the result may be missing
// part of the input, such as a page without text content or rows excluded by
// the unknown-status policy.
type Warning struct {
	// Page is the 1-indexed page the warning refers to, or 0 when the
	// warning is not page-specific.
	Page int

	Message string
}

// String renders the warning as a single line.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
