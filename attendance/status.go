package attendance

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus indicates a status symbol outside the {"P", "A"}
// vocabulary.
var ErrUnknownStatus = errors.New("attendance: unknown status symbol")

// Status is the attendance state recorded for one course on one date.
type Status int

const (
	// StatusUnknown is any symbol outside the known vocabulary.
	StatusUnknown Status = iota

	// StatusAbsent is the "A" symbol.
	StatusAbsent

	// StatusPresent is the "P" symbol.
	StatusPresent
)

// String returns the symbol for the status.
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "P"
	case StatusAbsent:
		return "A"
	default:
		return "?"
	}
}

// ParseStatus maps a cell value to a Status. The match is exact: anything
// other than "P" or "A" yields StatusUnknown and an error wrapping
// ErrUnknownStatus that names the offending symbol.
func ParseStatus(symbol string) (Status, error) {
	switch symbol {
	case "P":
		return StatusPresent, nil
	case "A":
		return StatusAbsent, nil
	default:
		return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, symbol)
	}
}

// Policy selects how aggregation treats status symbols outside the known
// vocabulary.
type Policy int

const (
	// Reject fails the aggregation. This is the default: an unknown symbol
	// must surface as an error rather than silently corrupt the counts.
	Reject Policy = iota

	// TreatAbsent counts the lecture but not the presence.
	TreatAbsent

	// SkipRow excludes the row from both counts.
	SkipRow
)
