// Package models defines the snapshot record types returned to the GUI.
// Every record is an immutable point-in-time value serialized to JSON;
// field names are part of the front-end contract and must not change.
package models

import "time"

// SystemInfo describes the host identity and boot state.
// Fields the platform does not expose are left at their zero value.
type SystemInfo struct {
	Name          string `json:"name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	Hostname      string `json:"hostname"`
	Uptime        uint64 `json:"uptime"`
	BootTime      uint64 `json:"boot_time"`
}

// CPUInfo describes the aggregate CPU state at one instant.
// Usage is a settled measurement over two counter readings.
type CPUInfo struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Usage         float64 `json:"usage"`
	Frequency     uint64  `json:"frequency"`
	Cores         int     `json:"cores"`
	PhysicalCores int     `json:"physical_cores"`
}

// MemoryInfo describes RAM and swap usage in bytes.
// UsagePercent is derived as used/total*100 and is 0 when total is 0.
type MemoryInfo struct {
	Total        uint64  `json:"total"`
	Used         uint64  `json:"used"`
	Available    uint64  `json:"available"`
	UsagePercent float64 `json:"usage_percent"`
	SwapTotal    uint64  `json:"swap_total"`
	SwapUsed     uint64  `json:"swap_used"`
}

// DiskInfo describes usage of one mounted volume.
// UsedSpace is always TotalSpace - AvailableSpace.
type DiskInfo struct {
	Name           string  `json:"name"`
	MountPoint     string  `json:"mount_point"`
	TotalSpace     uint64  `json:"total_space"`
	AvailableSpace uint64  `json:"available_space"`
	UsedSpace      uint64  `json:"used_space"`
	UsagePercent   float64 `json:"usage_percent"`
	FileSystem     string  `json:"file_system"`
}

// NetworkInfo holds cumulative byte counters for one interface.
// Counters are totals since the collector started, not rates.
type NetworkInfo struct {
	Name        string `json:"name"`
	Received    uint64 `json:"received"`
	Transmitted uint64 `json:"transmitted"`
}

// NetworkActivity is the per-interface counter pair used inside the
// extended bundle's interface map.
type NetworkActivity struct {
	Received    uint64 `json:"received"`
	Transmitted uint64 `json:"transmitted"`
}

// ProcessInfo describes one process's resource usage.
// CPUUsage is normalized to a 0-100 scale (raw usage divided by the
// logical core count). GPUUsage is a name-based estimate, not a
// measurement; GPUEstimated is always true until a real counter exists.
type ProcessInfo struct {
	Name         string  `json:"name"`
	PID          int32   `json:"pid"`
	CPUUsage     float64 `json:"cpu_usage"`
	Memory       uint64  `json:"memory"`
	GPUUsage     float64 `json:"gpu_usage"`
	GPUEstimated bool    `json:"gpu_estimated"`
}

// TemperatureInfo is one sensor reading in degrees Celsius.
// Max and Critical are nil when the sensor does not define them.
// Synthetic marks readings not taken from a real sensor.
type TemperatureInfo struct {
	Label     string   `json:"label"`
	Current   float64  `json:"current"`
	Max       *float64 `json:"max,omitempty"`
	Critical  *float64 `json:"critical,omitempty"`
	Synthetic bool     `json:"synthetic"`
}

// AdvancedSystemInfo carries process counts, load average, and session
// count. LoadAverage is all zeros on platforms without the concept.
type AdvancedSystemInfo struct {
	ProcessCount   int        `json:"process_count"`
	TotalProcesses int        `json:"total_processes"`
	LoadAverage    [3]float64 `json:"load_average"`
	UserSessions   int        `json:"user_sessions"`
}

// ExtendedInfo is the combined bundle the dashboard view polls:
// settled CPU usage, memory figures, synthetic temperatures, full
// interface activity map, top-5 processes, and the capture instant.
type ExtendedInfo struct {
	CPUUsage      float64                    `json:"cpu_usage"`
	MemoryUsage   float64                    `json:"memory_usage"`
	MemoryUsedGB  float64                    `json:"memory_used_gb"`
	MemoryTotalGB float64                    `json:"memory_total_gb"`
	Temperatures  []TemperatureInfo          `json:"temperatures"`
	Network       map[string]NetworkActivity `json:"network"`
	TopProcesses  []ProcessInfo              `json:"top_processes"`
	Timestamp     time.Time                  `json:"timestamp"`
}
