package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

func TestAggregate(t *testing.T) {
	outcomes := []domain.Outcome{
		{ProjectID: "p-1", AccountFrozen: true, Classification: domain.OutcomeReset},
		{ProjectID: "p-2", AccountFrozen: true, Classification: domain.OutcomeReset},
		{ProjectID: "p-3", AccountFrozen: false, Classification: domain.OutcomeReset},
		{ProjectID: "p-4", Classification: domain.OutcomeAlreadyCorrect},
		{ProjectID: "p-5", Classification: domain.OutcomeDryRun},
		{ProjectID: "p-6", Classification: domain.OutcomeFetchError},
		{ProjectID: "p-7", Classification: domain.OutcomeAPIRejected},
		{ProjectID: "p-8", Classification: domain.OutcomePartial},
	}

	stats := Aggregate(outcomes, 3*time.Second)

	assert.Equal(t, 8, stats.Processed)
	assert.Equal(t, 3, stats.Reset)
	assert.Equal(t, 2, stats.ResetFrozen)
	assert.Equal(t, 1, stats.ResetActive)
	assert.Equal(t, 1, stats.AlreadyCorrect)
	assert.Equal(t, 1, stats.DryRun)
	assert.Equal(t, 3, stats.Failures)
	assert.Equal(t, 3*time.Second, stats.Duration)
	assert.Equal(t, 3, stats.ByClassification[domain.OutcomeReset])
	assert.Equal(t, 1, stats.ByClassification[domain.OutcomePartial])
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, time.Second)

	assert.Equal(t, 0, stats.Processed)
	assert.Equal(t, 0, stats.Failures)
	assert.Empty(t, stats.ByClassification)
}

func TestFailures(t *testing.T) {
	outcomes := []domain.Outcome{
		{ProjectID: "p-1", Classification: domain.OutcomeReset},
		{ProjectID: "p-2", Classification: domain.OutcomeUpdateError, Detail: "connection reset"},
		{ProjectID: "p-3", Classification: domain.OutcomeAlreadyCorrect},
		{ProjectID: "p-4", Classification: domain.OutcomeVerifyError, Detail: "timeout"},
	}

	failed := Failures(outcomes)

	assert.Len(t, failed, 2)
	assert.Equal(t, "p-2", failed[0].ProjectID)
	assert.Equal(t, "p-4", failed[1].ProjectID)
}

func TestFailures_DryRunIsNotFailure(t *testing.T) {
	failed := Failures([]domain.Outcome{
		{ProjectID: "p-1", Classification: domain.OutcomeDryRun},
	})
	assert.Empty(t, failed)
}
