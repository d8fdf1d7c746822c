package domain

import "fmt"

// ScanConfig is the remote scan schedule of a project. Two values are
// canonical: Disabled() and Enabled(n). Anything else (e.g. auto scan on
// with zero scans per day) is a policy violation.
type ScanConfig struct {
	AutoScan    bool
	ScansPerDay int
}

// Disabled is the canonical off state: auto scan off, zero scans per day.
func Disabled() ScanConfig {
	return ScanConfig{AutoScan: false, ScansPerDay: 0}
}

// Enabled is the canonical on state at the given daily frequency.
func Enabled(scansPerDay int) ScanConfig {
	return ScanConfig{AutoScan: true, ScansPerDay: scansPerDay}
}

func (c ScanConfig) IsDisabled() bool {
	return c == Disabled()
}

func (c ScanConfig) String() string {
	auto := 0
	if c.AutoScan {
		auto = 1
	}
	return fmt.Sprintf("auto_scan=%d, times_per_day=%d", auto, c.ScansPerDay)
}
