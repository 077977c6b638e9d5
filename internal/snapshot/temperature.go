// Synthetic temperature readings. The host sensor table is not read;
// the two entries below are placeholders that keep the record shape
// complete on hardware without accessible sensors. Every reading is
// marked synthetic so the GUI can label it. A real sensor provider can
// replace this file without changing the record shape.
package snapshot

import (
	"context"

	"github.com/sysdeck-app/backend/internal/models"
)

const (
	// cpuPackageBaseline is the idle baseline for the "CPU Package" entry.
	cpuPackageBaseline = 45.0
	// systemBaseline is the idle baseline for the "System" entry.
	systemBaseline = 35.0

	// cpuPackageWeight and systemWeight scale CPU load into the
	// derived readings used by the extended bundle.
	cpuPackageWeight = 0.5
	systemWeight     = 0.3
)

// Temperatures returns the fixed two-entry placeholder list at its
// idle baselines.
func (b *Builder) Temperatures(ctx context.Context) ([]models.TemperatureInfo, error) {
	return deriveTemperatures(0), nil
}

// deriveTemperatures produces the placeholder readings weighted by the
// current global CPU usage percent: baseline + 0.5*cpu for the package
// sensor, baseline + 0.3*cpu for the system sensor.
func deriveTemperatures(cpuUsage float64) []models.TemperatureInfo {
	max := 95.0
	critical := 105.0
	return []models.TemperatureInfo{
		{
			Label:     "CPU Package",
			Current:   cpuPackageBaseline + cpuUsage*cpuPackageWeight,
			Max:       &max,
			Critical:  &critical,
			Synthetic: true,
		},
		{
			Label:     "System",
			Current:   systemBaseline + cpuUsage*systemWeight,
			Synthetic: true,
		},
	}
}
