// Realtime scalar stats for the dashboard header: settled CPU usage
// plus memory percent and GB figures, keyed by metric name.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// RealtimeStats returns the named scalar metrics cpu_usage,
// memory_usage, memory_used_gb, and memory_total_gb. The CPU value is
// settled over the configured delay, same as CPUInfo.
func (b *Builder) RealtimeStats(ctx context.Context) (map[string]float64, error) {
	usage, err := cpu.PercentWithContext(ctx, b.settleDelay, false)
	if err != nil {
		return nil, fmt.Errorf("sampling cpu usage: %w", err)
	}

	memory, err := b.MemoryInfo(ctx)
	if err != nil {
		return nil, err
	}

	stats := map[string]float64{
		"cpu_usage":       0,
		"memory_usage":    memory.UsagePercent,
		"memory_used_gb":  bytesToGB(memory.Used),
		"memory_total_gb": bytesToGB(memory.Total),
	}
	if len(usage) > 0 {
		stats["cpu_usage"] = usage[0]
	}

	return stats, nil
}
