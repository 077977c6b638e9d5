// Network snapshots: cumulative RX/TX byte counters per interface.
// Uses gopsutil for cross-platform network metrics.
package snapshot

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/sysdeck-app/backend/internal/models"
)

// NetworkInfo returns one record per interface in the enumeration
// order of the host's interface table. Counters are cumulative totals;
// no deltas or rates are computed here.
func (b *Builder) NetworkInfo(ctx context.Context) ([]models.NetworkInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("reading interface counters: %w", err)
	}

	results := make([]models.NetworkInfo, 0, len(counters))
	for _, c := range counters {
		results = append(results, models.NetworkInfo{
			Name:        c.Name,
			Received:    c.BytesRecv,
			Transmitted: c.BytesSent,
		})
	}

	return results, nil
}

// networkActivity returns the interface name -> counter pair map used
// by the extended bundle.
func (b *Builder) networkActivity(ctx context.Context) (map[string]models.NetworkActivity, error) {
	interfaces, err := b.NetworkInfo(ctx)
	if err != nil {
		return nil, err
	}

	activity := make(map[string]models.NetworkActivity, len(interfaces))
	for _, iface := range interfaces {
		activity[iface.Name] = models.NetworkActivity{
			Received:    iface.Received,
			Transmitted: iface.Transmitted,
		}
	}
	return activity, nil
}
