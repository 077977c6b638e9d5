// Top-N process snapshots ranked by normalized CPU usage.
// Uses gopsutil for cross-platform process listing.
package snapshot

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/sysdeck-app/backend/internal/models"
)

// DefaultTopProcesses is the process count for the standalone endpoint.
const DefaultTopProcesses = 15

// TopProcesses returns the `limit` processes with the highest
// normalized CPU usage, descending. Raw per-process usage can exceed
// 100 on multi-core hosts, so it is divided by the logical core count
// to a 0-100 scale comparable across machines. Individual processes
// that cannot be read are skipped rather than failing the listing.
func (b *Builder) TopProcesses(ctx context.Context, limit int) ([]models.ProcessInfo, error) {
	if limit <= 0 {
		limit = DefaultTopProcesses
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores <= 0 {
		cores = 1
	}

	infos := make([]models.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		raw, _ := p.CPUPercentWithContext(ctx)
		normalized := normalizeCPUPercent(raw, cores)

		var resident uint64
		if m, err := p.MemoryInfoWithContext(ctx); err == nil && m != nil {
			resident = m.RSS
		}

		infos = append(infos, models.ProcessInfo{
			Name:         name,
			PID:          p.Pid,
			CPUUsage:     normalized,
			Memory:       resident,
			GPUUsage:     estimateGPUUsage(name, normalized),
			GPUEstimated: true,
		})
	}

	return sortTopProcesses(infos, limit), nil
}

// normalizeCPUPercent scales a raw per-process usage value down by the
// logical core count, bounding it to a 0-100 range.
func normalizeCPUPercent(raw float64, cores int) float64 {
	if cores <= 0 {
		cores = 1
	}
	return raw / float64(cores)
}

// sortTopProcesses orders processes by CPU usage descending and
// truncates to limit. The stable sort keeps the provider's enumeration
// order for ties.
func sortTopProcesses(infos []models.ProcessInfo, limit int) []models.ProcessInfo {
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CPUUsage > infos[j].CPUUsage
	})
	if len(infos) > limit {
		infos = infos[:limit]
	}
	return infos
}
