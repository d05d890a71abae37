package model

import "strings"

// StatusRestricted is the scanner status that needs review or a baseline entry.
const StatusRestricted = "restricted"

// SummaryEntry is one line of the scanner's summary file.
type SummaryEntry struct {
	Dependency string // e.g. npm/npmjs/-/left-pad/1.3.0
	License    string // SPDX expression as reported by the scanner
	Status     string // approved, restricted, ...
	Source     string // where the license data came from (clearlydefined, #1234)
}

// IsRestricted reports whether the entry's status is restricted, ignoring case.
func (e SummaryEntry) IsRestricted() bool {
	return strings.EqualFold(e.Status, StatusRestricted)
}

// Exclusions maps a dependency identifier to its optional annotation. The
// annotation is any decoded JSON value, or nil when the baseline is a plain
// list of identifiers.
type Exclusions map[string]any

// Reconciliation is the outcome of checking restricted entries against the
// exclusions.
type Reconciliation struct {
	Excluded  []SummaryEntry // restricted, covered by an exclusion
	Unhandled []SummaryEntry // restricted, not covered
	Unmatched []string       // exclusions that covered nothing
}

// Passed reports whether every restricted entry was excluded.
func (r Reconciliation) Passed() bool {
	return len(r.Unhandled) == 0
}
