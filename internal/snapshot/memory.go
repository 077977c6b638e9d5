// Memory snapshot: RAM and swap usage in bytes plus a derived percent.
// Uses gopsutil for cross-platform memory metrics.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/models"
)

const bytesPerGB = 1 << 30

// MemoryInfo returns the RAM/swap snapshot. The usage percent is
// derived from the used/total counters rather than taken from the
// provider so the guard for total=0 is explicit.
func (b *Builder) MemoryInfo(ctx context.Context) (models.MemoryInfo, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.MemoryInfo{}, fmt.Errorf("reading virtual memory: %w", err)
	}

	result := models.MemoryInfo{
		Total:        v.Total,
		Used:         v.Used,
		Available:    v.Available,
		UsagePercent: usagePercent(v.Used, v.Total),
	}

	// Swap is absent on some platforms; report zeros rather than fail.
	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		result.SwapTotal = swap.Total
		result.SwapUsed = swap.Used
	} else {
		b.logger.Debug("Swap metrics not available", zap.Error(err))
	}

	return result, nil
}

// usagePercent computes used/total*100, returning 0 when total is 0.
func usagePercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100.0
}

// bytesToGB converts a byte count to gigabytes (1 GB = 1024^3 bytes).
func bytesToGB(bytes uint64) float64 {
	return float64(bytes) / float64(bytesPerGB)
}
