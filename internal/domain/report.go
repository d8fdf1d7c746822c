package domain

import "time"

// RunStats holds the aggregate counts for one reconciliation run.
type RunStats struct {
	Processed        int                    `json:"processed"`
	ByClassification map[Classification]int `json:"by_classification"`
	Reset            int                    `json:"reset"`
	ResetFrozen      int                    `json:"reset_frozen_accounts"`
	ResetActive      int                    `json:"reset_active_accounts"`
	AlreadyCorrect   int                    `json:"already_correct"`
	DryRun           int                    `json:"dry_run"`
	Failures         int                    `json:"failures"`
	Duration         time.Duration          `json:"duration"`
}

// RunReport is the structured result of a run, handed to the external
// reporter. Formatting for humans is the reporter's problem.
type RunReport struct {
	StartedAt       time.Time `json:"started_at"`
	DryRun          bool      `json:"dry_run"`
	AccountsChecked int       `json:"accounts_checked"`
	FrozenAccounts  int       `json:"frozen_accounts"`
	ActiveAccounts  int       `json:"active_accounts"`
	NewlyFrozen     []string  `json:"newly_frozen_accounts,omitempty"`
	Stats           RunStats  `json:"stats"`
	Outcomes        []Outcome `json:"outcomes"`
	FailureList     []Outcome `json:"failure_list,omitempty"`
}

// Failed reports whether any project ended in a failure classification.
// This is an aggregate signal only; the run never short-circuits on it.
func (r *RunReport) Failed() bool {
	return r.Stats.Failures > 0
}
