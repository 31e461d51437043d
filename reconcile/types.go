package reconcile

import "github.com/reconcilarr/reconcilarr/overseerr"

// Mode selects between reporting discrepancies and repairing them.
type Mode int

const (
	// ModeCheck reports missing items without mutating downstream state
	ModeCheck Mode = iota
	// ModeSync re-submits missing items to the downstream services
	ModeSync
)

// String returns the string representation of a Mode
func (m Mode) String() string {
	if m == ModeSync {
		return "sync"
	}
	return "check"
}

// Outcome classifies a single request after reconciliation.
type Outcome int

const (
	// OutcomePresent means the item already exists downstream
	OutcomePresent Outcome = iota
	// OutcomeMissing means the item is absent and was only reported
	OutcomeMissing
	// OutcomeRepaired means the item was absent and successfully re-submitted
	OutcomeRepaired
	// OutcomeRepairFailed means the re-submission was attempted and failed
	OutcomeRepairFailed
	// OutcomeUnverifiable means a series request carries no TVDB id
	OutcomeUnverifiable
)

// String returns the string representation of an Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePresent:
		return "present"
	case OutcomeMissing:
		return "missing"
	case OutcomeRepaired:
		return "repaired"
	case OutcomeRepairFailed:
		return "repair failed"
	case OutcomeUnverifiable:
		return "unverifiable"
	default:
		return "unknown"
	}
}

// Item is one reportable request: missing, unverifiable, or a failed repair.
// Title is the display title resolved at report time, which may be richer
// than the title carried on the request itself.
type Item struct {
	Request overseerr.Request
	Title   string
	Outcome Outcome
}

// Summary holds the run-level aggregates.
type Summary struct {
	Considered   int
	Missing      int
	Unverifiable int
	Repaired     int
	RepairFailed int
}

// Result is the outcome of one reconciliation run. Items preserves the
// broker's fetch order. In sync mode it contains failed repairs (attempted
// but still missing), making the sync report a superset of what a check run
// would have found unrepaired.
type Result struct {
	Items   []Item
	Summary Summary
}

// Options configures a reconciliation run.
type Options struct {
	Mode Mode

	// MediaType restricts the run to one media kind when non-empty.
	MediaType overseerr.MediaType

	// Filter drops requests it returns false for. Nil means no filtering.
	Filter func(overseerr.Request) bool
}
