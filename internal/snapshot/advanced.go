// Advanced host counters: process count, load average, session count.
// Uses gopsutil process and load tables.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/models"
)

// AdvancedInfo returns process counts, the load average, and the user
// session count. The load average is all zeros on platforms without
// the concept, and the session count is a fixed placeholder of 1 (the
// desktop app always runs inside exactly one interactive session).
func (b *Builder) AdvancedInfo(ctx context.Context) (models.AdvancedSystemInfo, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return models.AdvancedSystemInfo{}, fmt.Errorf("counting processes: %w", err)
	}

	result := models.AdvancedSystemInfo{
		ProcessCount:   len(pids),
		TotalProcesses: len(pids),
		UserSessions:   1,
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		result.LoadAverage = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	} else {
		b.logger.Debug("Load average not available", zap.Error(err))
	}

	return result, nil
}
