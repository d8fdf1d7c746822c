package domain

// Classification is the terminal state of one project's reconciliation.
// Every project processed in a run ends in exactly one classification.
type Classification string

const (
	OutcomeAlreadyCorrect Classification = "already-correct"
	OutcomeReset          Classification = "reset"
	OutcomePartial        Classification = "partial"
	OutcomeDryRun         Classification = "dry-run"
	OutcomeFetchError     Classification = "fetch-error"
	OutcomeUpdateError    Classification = "update-error"
	OutcomeAPIRejected    Classification = "api-rejected"
	OutcomeVerifyError    Classification = "verify-error"
)

// IsFailure reports whether the classification should count against the
// run. Partial is a failure: the update was accepted but the resulting
// config does not match the canonical tuple.
func (c Classification) IsFailure() bool {
	switch c {
	case OutcomePartial, OutcomeFetchError, OutcomeUpdateError, OutcomeAPIRejected, OutcomeVerifyError:
		return true
	}
	return false
}

// Outcome records what happened to a single project during a run. It is
// immutable once produced.
type Outcome struct {
	ProjectID      string         `json:"project_id"`
	AccountID      string         `json:"account_id"`
	CampaignID     string         `json:"campaign_id,omitempty"`
	AccountFrozen  bool           `json:"account_frozen"`
	Classification Classification `json:"classification"`
	PriorConfig    *ScanConfig    `json:"prior_config,omitempty"`
	FinalConfig    *ScanConfig    `json:"final_config,omitempty"`
	Detail         string         `json:"detail,omitempty"`
}
