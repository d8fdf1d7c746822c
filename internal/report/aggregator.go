// Package report reduces per-project outcomes into run statistics. Pure
// functions only; formatting for humans happens downstream.
package report

import (
	"time"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

// Aggregate tallies the outcome list. Resets are split by the owning
// account's status at evaluation time: resets on frozen accounts are the
// priority signal for the reporter.
func Aggregate(outcomes []domain.Outcome, duration time.Duration) domain.RunStats {
	stats := domain.RunStats{
		Processed:        len(outcomes),
		ByClassification: make(map[domain.Classification]int),
		Duration:         duration,
	}

	for _, o := range outcomes {
		stats.ByClassification[o.Classification]++

		switch o.Classification {
		case domain.OutcomeReset:
			stats.Reset++
			if o.AccountFrozen {
				stats.ResetFrozen++
			} else {
				stats.ResetActive++
			}
		case domain.OutcomeAlreadyCorrect:
			stats.AlreadyCorrect++
		case domain.OutcomeDryRun:
			stats.DryRun++
		}

		if o.Classification.IsFailure() {
			stats.Failures++
		}
	}

	return stats
}

// Failures returns the outcomes that ended in a failure classification,
// with enough detail to act on without re-querying the remote system.
func Failures(outcomes []domain.Outcome) []domain.Outcome {
	var out []domain.Outcome
	for _, o := range outcomes {
		if o.Classification.IsFailure() {
			out = append(out, o)
		}
	}
	return out
}
