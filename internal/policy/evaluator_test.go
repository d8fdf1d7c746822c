package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
)

func TestEvaluate(t *testing.T) {
	evaluator := New(72, 12)

	tests := []struct {
		name         string
		status       domain.StatusLabel
		current      domain.ScanConfig
		line         domain.ProductLine
		wantDesired  domain.ScanConfig
		wantRequired bool
	}{
		{
			name:         "active account at standard frequency needs nothing",
			status:       domain.StatusActive,
			current:      domain.Enabled(72),
			line:         domain.LineStandard,
			wantDesired:  domain.Enabled(72),
			wantRequired: false,
		},
		{
			name:         "frozen account with elevated schedule is disabled",
			status:       domain.StatusFrozenInactive,
			current:      domain.Enabled(72),
			line:         domain.LineStandard,
			wantDesired:  domain.Disabled(),
			wantRequired: true,
		},
		{
			name:    "half-disabled tuple still requires correction",
			status:  domain.StatusFrozenPaused,
			current: domain.ScanConfig{AutoScan: true, ScansPerDay: 0},
			line:    domain.LineStandard,
			// (auto_scan=1, times_per_day=0) is not the canonical
			// disabled shape; the project still burns scan slots.
			wantDesired:  domain.Disabled(),
			wantRequired: true,
		},
		{
			name:         "frozen account already disabled is a no-op",
			status:       domain.StatusFrozenDepleted,
			current:      domain.Disabled(),
			line:         domain.LineStandard,
			wantDesired:  domain.Disabled(),
			wantRequired: false,
		},
		{
			name:         "active account that was disabled gets re-enabled",
			status:       domain.StatusActive,
			current:      domain.Disabled(),
			line:         domain.LineStandard,
			wantDesired:  domain.Enabled(72),
			wantRequired: true,
		},
		{
			name:         "active addon project uses the addon frequency",
			status:       domain.StatusActive,
			current:      domain.Enabled(72),
			line:         domain.LineAddon,
			wantDesired:  domain.Enabled(12),
			wantRequired: true,
		},
		{
			name:         "unknown status never enables",
			status:       domain.StatusUnknown,
			current:      domain.Disabled(),
			line:         domain.LineStandard,
			wantDesired:  domain.Disabled(),
			wantRequired: false,
		},
		{
			name:         "unknown status never disables",
			status:       domain.StatusUnknown,
			current:      domain.Enabled(72),
			line:         domain.LineStandard,
			wantDesired:  domain.Enabled(72),
			wantRequired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired, required := evaluator.Evaluate(tt.status, tt.current, tt.line)
			assert.Equal(t, tt.wantDesired, desired)
			assert.Equal(t, tt.wantRequired, required)
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	evaluator := New(72, 12)

	// Applying the desired config and evaluating again must always land
	// on "no action required".
	for _, status := range []domain.StatusLabel{
		domain.StatusActive,
		domain.StatusFrozenInactive,
		domain.StatusFrozenPaused,
		domain.StatusFrozenDepleted,
	} {
		desired, _ := evaluator.Evaluate(status, domain.Enabled(1), domain.LineStandard)
		again, required := evaluator.Evaluate(status, desired, domain.LineStandard)
		assert.Equal(t, desired, again, "status %s", status)
		assert.False(t, required, "status %s", status)
	}
}
