// Disk snapshots, one per mounted volume, in mount table order.
// Uses gopsutil for cross-platform disk metrics.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/models"
)

// DiskInfo returns one record per mounted volume. Order follows the
// host's mount table enumeration and is not guaranteed stable across
// calls. Volumes whose usage cannot be read are skipped.
func (b *Builder) DiskInfo(ctx context.Context) ([]models.DiskInfo, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	results := make([]models.DiskInfo, 0, len(partitions))
	for _, p := range partitions {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			b.logger.Debug("Skipping inaccessible volume",
				zap.String("mount", p.Mountpoint),
				zap.Error(err))
			continue
		}
		results = append(results, buildDiskInfo(p.Device, p.Mountpoint, p.Fstype, usage.Total, usage.Free))
	}

	return results, nil
}

// buildDiskInfo derives the used-space and percent figures for one
// volume. Used space is defined as total minus available, and the
// percent is 0 for zero-sized volumes.
func buildDiskInfo(name, mount, fs string, total, available uint64) models.DiskInfo {
	used := total - available
	return models.DiskInfo{
		Name:           name,
		MountPoint:     mount,
		TotalSpace:     total,
		AvailableSpace: available,
		UsedSpace:      used,
		UsagePercent:   usagePercent(used, total),
		FileSystem:     fs,
	}
}
