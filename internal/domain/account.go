package domain

import "time"

// StatusLabel is the business status of an account as reported by the
// account query surface. The engine never writes these.
type StatusLabel string

const (
	StatusActive         StatusLabel = "active"
	StatusFrozenInactive StatusLabel = "frozen_inactive"
	StatusFrozenPaused   StatusLabel = "frozen_paused"
	StatusFrozenDepleted StatusLabel = "frozen_depleted"
	StatusUnknown        StatusLabel = "unknown"
)

// IsFrozen reports whether the label is one of the frozen variants.
// Unknown is deliberately not frozen: absence of information must never
// trigger a disable.
func (s StatusLabel) IsFrozen() bool {
	switch s {
	case StatusFrozenInactive, StatusFrozenPaused, StatusFrozenDepleted:
		return true
	}
	return false
}

type Account struct {
	ID                  string
	Status              StatusLabel
	LastActivityAt      *time.Time
	InactivityStartedAt *time.Time
}
