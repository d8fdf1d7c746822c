// Package policy decides what a project's scan schedule should be,
// given only the owning account's current status and the project's
// product line. It performs no I/O.
package policy

import (
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// Evaluator holds the per-line enabled frequencies.
type Evaluator struct {
	standardScansPerDay int
	addonScansPerDay    int
}

func New(standardScansPerDay, addonScansPerDay int) *Evaluator {
	return &Evaluator{
		standardScansPerDay: standardScansPerDay,
		addonScansPerDay:    addonScansPerDay,
	}
}

// Evaluate returns the desired scan schedule and whether a corrective
// call is required. Frozen accounts get the canonical disabled tuple;
// active accounts get the line's enabled schedule. An account whose
// status could not be resolved is left exactly as found: no action may
// ever be driven by missing information, in either direction.
func (e *Evaluator) Evaluate(status domain.StatusLabel, current domain.ScanConfig, line domain.ProductLine) (domain.ScanConfig, bool) {
	if status == domain.StatusUnknown {
		return current, false
	}

	var desired domain.ScanConfig
	if status.IsFrozen() {
		desired = domain.Disabled()
	} else {
		desired = domain.Enabled(e.frequency(line))
	}

	return desired, current != desired
}

func (e *Evaluator) frequency(line domain.ProductLine) int {
	if line == domain.LineAddon {
		return e.addonScansPerDay
	}
	return e.standardScansPerDay
}
