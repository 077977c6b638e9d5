// CPU snapshot: model identity, settled usage percentage, frequency,
// and core counts. Uses gopsutil for cross-platform CPU metrics.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/models"
)

// CPUInfo returns the aggregate CPU snapshot. The usage measurement
// blocks for the settle delay so the OS counters accumulate a delta;
// sampling with a zero interval would read 0 right after start.
func (b *Builder) CPUInfo(ctx context.Context) (models.CPUInfo, error) {
	usage, err := cpu.PercentWithContext(ctx, b.settleDelay, false)
	if err != nil {
		return models.CPUInfo{}, fmt.Errorf("sampling cpu usage: %w", err)
	}

	result := models.CPUInfo{}
	if len(usage) > 0 {
		result.Usage = usage[0]
	}

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		b.logger.Debug("CPU identity not available", zap.Error(err))
	}
	if len(infos) > 0 {
		result.Name = fmt.Sprintf("cpu%d", infos[0].CPU)
		result.Brand = infos[0].ModelName

		aggregate := uint64(infos[0].Mhz)
		perCore := make([]uint64, 0, len(infos)-1)
		for _, info := range infos[1:] {
			perCore = append(perCore, uint64(info.Mhz))
		}
		result.Frequency = pickFrequency(aggregate, perCore)
	}

	// Core counts are best-effort; 0 means the platform did not report.
	if logical, err := cpu.CountsWithContext(ctx, true); err == nil {
		result.Cores = logical
	}
	if physical, err := cpu.CountsWithContext(ctx, false); err == nil {
		result.PhysicalCores = physical
	}

	return result, nil
}

// pickFrequency resolves the reported CPU frequency in MHz. Some
// platforms report 0 for the aggregate entry; the first individual
// core's value is substituted, and 0 is returned only when neither
// is available.
func pickFrequency(aggregate uint64, perCore []uint64) uint64 {
	if aggregate != 0 {
		return aggregate
	}
	if len(perCore) > 0 {
		return perCore[0]
	}
	return 0
}
