// Extended bundle: the combined record the dashboard view polls.
// The network and process reads run concurrently with the settling CPU
// sample; each read owns its provider handles, so nothing is shared.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"

	"github.com/sysdeck-app/backend/internal/models"
)

// bundleTopProcesses is the process count inside the extended bundle.
const bundleTopProcesses = 5

// ExtendedInfo assembles the combined dashboard bundle: settled CPU
// usage, memory figures, CPU-weighted synthetic temperatures, the full
// interface activity map, the top-5 process list, and the capture
// timestamp.
func (b *Builder) ExtendedInfo(ctx context.Context) (models.ExtendedInfo, error) {
	var (
		cpuUsage float64
		memory   models.MemoryInfo
		network  map[string]models.NetworkActivity
		procs    []models.ProcessInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		usage, err := cpu.PercentWithContext(gctx, b.settleDelay, false)
		if err != nil {
			return fmt.Errorf("sampling cpu usage: %w", err)
		}
		if len(usage) > 0 {
			cpuUsage = usage[0]
		}
		return nil
	})

	g.Go(func() error {
		var err error
		memory, err = b.MemoryInfo(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		network, err = b.networkActivity(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		procs, err = b.TopProcesses(gctx, bundleTopProcesses)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.ExtendedInfo{}, err
	}

	return models.ExtendedInfo{
		CPUUsage:      cpuUsage,
		MemoryUsage:   memory.UsagePercent,
		MemoryUsedGB:  bytesToGB(memory.Used),
		MemoryTotalGB: bytesToGB(memory.Total),
		Temperatures:  deriveTemperatures(cpuUsage),
		Network:       network,
		TopProcesses:  procs,
		Timestamp:     time.Now().UTC(),
	}, nil
}
