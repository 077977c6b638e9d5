// Host identity snapshot: OS name/version, kernel, hostname, uptime.
// Uses gopsutil host info; missing platform fields default to ""/0.
package snapshot

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/models"
)

// SystemInfo returns the host identity record. It never fails: when the
// platform cannot be queried at all, a zero-valued record is returned
// and the failure is only logged.
func (b *Builder) SystemInfo(ctx context.Context) (models.SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		b.logger.Debug("Host info not available", zap.Error(err))
		return models.SystemInfo{}, nil
	}

	return models.SystemInfo{
		Name:          info.Platform,
		OSVersion:     info.PlatformVersion,
		KernelVersion: info.KernelVersion,
		Hostname:      info.Hostname,
		Uptime:        info.Uptime,
		BootTime:      info.BootTime,
	}, nil
}
