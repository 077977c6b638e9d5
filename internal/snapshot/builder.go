// Package snapshot builds point-in-time host telemetry records.
// Each operation queries the host through gopsutil on demand and returns
// an immutable record; no state is shared between calls, so operations
// may run concurrently.
package snapshot

import (
	"time"

	"go.uber.org/zap"
)

// DefaultSettleDelay is the wait between the two CPU counter readings
// needed to compute a usage percentage. A single reading of the OS
// cumulative counters yields a meaningless value.
const DefaultSettleDelay = 200 * time.Millisecond

// Builder produces telemetry snapshots from the live host.
// The zero settle delay is replaced by DefaultSettleDelay.
type Builder struct {
	settleDelay time.Duration
	logger      *zap.Logger
}

// New creates a Builder. A nil logger disables logging; a non-positive
// settle delay falls back to the default.
func New(settleDelay time.Duration, logger *zap.Logger) *Builder {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		settleDelay: settleDelay,
		logger:      logger,
	}
}

// SettleDelay returns the configured wait between CPU counter readings.
func (b *Builder) SettleDelay() time.Duration { return b.settleDelay }
