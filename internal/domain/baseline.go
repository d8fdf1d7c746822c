package domain

import (
	"sort"
	"time"
)

// Baseline is the persisted snapshot of account statuses from a previous
// run. It is only a diffing aid for transition detection, never an
// authority on current state; an empty baseline means "no prior data".
type Baseline struct {
	Timestamp time.Time              `json:"timestamp"`
	Statuses  map[string]StatusLabel `json:"statuses"`
}

// NewlyFrozen returns the accounts that are frozen in current but were
// not frozen in the baseline. Accounts absent from the baseline do not
// count as transitions: a stale or empty baseline must not fabricate them.
func (b *Baseline) NewlyFrozen(current map[string]StatusLabel) []string {
	var out []string
	for id, status := range current {
		if !status.IsFrozen() {
			continue
		}
		prev, ok := b.Statuses[id]
		if !ok {
			continue
		}
		if !prev.IsFrozen() {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
