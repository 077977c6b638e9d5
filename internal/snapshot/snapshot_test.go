package snapshot

import (
	"math"
	"testing"

	"github.com/sysdeck-app/backend/internal/models"
)

func TestPickFrequency(t *testing.T) {
	tests := []struct {
		name      string
		aggregate uint64
		perCore   []uint64
		expected  uint64
	}{
		{"aggregate reported", 3200, []uint64{2400, 2400}, 3200},
		{"fallback to first core", 0, []uint64{2400, 2600}, 2400},
		{"no cores", 0, nil, 0},
		{"zero first core", 0, []uint64{0, 2600}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickFrequency(tt.aggregate, tt.perCore)
			if got != tt.expected {
				t.Errorf("pickFrequency(%d, %v) = %d, want %d", tt.aggregate, tt.perCore, got, tt.expected)
			}
		})
	}
}

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		name     string
		used     uint64
		total    uint64
		expected float64
	}{
		{"half", 50, 100, 50.0},
		{"full", 100, 100, 100.0},
		{"empty", 0, 100, 0.0},
		{"zero total guarded", 10, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usagePercent(tt.used, tt.total)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("usagePercent(%d, %d) = %v, want %v", tt.used, tt.total, got, tt.expected)
			}
		})
	}
}

func TestBuildDiskInfo(t *testing.T) {
	d := buildDiskInfo("/dev/sda1", "/", "ext4", 1000, 250)

	if d.UsedSpace != 750 {
		t.Errorf("UsedSpace = %d, want 750", d.UsedSpace)
	}
	if d.UsedSpace != d.TotalSpace-d.AvailableSpace {
		t.Errorf("UsedSpace %d != TotalSpace-AvailableSpace %d", d.UsedSpace, d.TotalSpace-d.AvailableSpace)
	}
	if math.Abs(d.UsagePercent-75.0) > 1e-9 {
		t.Errorf("UsagePercent = %v, want 75.0", d.UsagePercent)
	}
	if d.Name != "/dev/sda1" || d.MountPoint != "/" || d.FileSystem != "ext4" {
		t.Errorf("identity fields not carried: %+v", d)
	}
}

func TestBuildDiskInfo_ZeroTotal(t *testing.T) {
	d := buildDiskInfo("none", "/proc", "proc", 0, 0)

	if d.UsagePercent != 0 {
		t.Errorf("UsagePercent = %v, want 0 for zero-sized volume", d.UsagePercent)
	}
	if d.UsedSpace != 0 {
		t.Errorf("UsedSpace = %d, want 0", d.UsedSpace)
	}
}

func TestNormalizeCPUPercent(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		cores    int
		expected float64
	}{
		{"eight cores", 400.0, 8, 50.0},
		{"single core", 42.0, 1, 42.0},
		{"full machine", 800.0, 8, 100.0},
		{"unknown cores treated as one", 42.0, 0, 42.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeCPUPercent(tt.raw, tt.cores)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("normalizeCPUPercent(%v, %d) = %v, want %v", tt.raw, tt.cores, got, tt.expected)
			}
		})
	}
}

func TestSortTopProcesses(t *testing.T) {
	procs := []models.ProcessInfo{
		{Name: "idle", PID: 1, CPUUsage: 0.1},
		{Name: "busy", PID: 2, CPUUsage: 80.0},
		{Name: "medium", PID: 3, CPUUsage: 12.5},
		{Name: "tied-a", PID: 4, CPUUsage: 5.0},
		{Name: "tied-b", PID: 5, CPUUsage: 5.0},
	}

	top := sortTopProcesses(procs, 3)

	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].CPUUsage > top[i-1].CPUUsage {
			t.Errorf("not sorted descending at %d: %v > %v", i, top[i].CPUUsage, top[i-1].CPUUsage)
		}
	}
	if top[0].Name != "busy" || top[1].Name != "medium" {
		t.Errorf("unexpected order: %v, %v", top[0].Name, top[1].Name)
	}
}

func TestSortTopProcesses_TiesKeepEnumerationOrder(t *testing.T) {
	procs := []models.ProcessInfo{
		{Name: "tied-a", PID: 4, CPUUsage: 5.0},
		{Name: "tied-b", PID: 5, CPUUsage: 5.0},
	}

	top := sortTopProcesses(procs, 2)

	if top[0].Name != "tied-a" || top[1].Name != "tied-b" {
		t.Errorf("tie order changed: %v, %v", top[0].Name, top[1].Name)
	}
}

func TestSortTopProcesses_LimitExceedsCount(t *testing.T) {
	procs := []models.ProcessInfo{
		{Name: "only", PID: 1, CPUUsage: 1.0},
	}

	top := sortTopProcesses(procs, 15)

	if len(top) != 1 {
		t.Errorf("len = %d, want 1", len(top))
	}
}

func TestBytesToGB(t *testing.T) {
	got := bytesToGB(4 << 30)
	if math.Abs(got-4.0) > 1e-9 {
		t.Errorf("bytesToGB(4GiB) = %v, want 4.0", got)
	}
}

func TestNewDefaults(t *testing.T) {
	b := New(0, nil)
	if b.SettleDelay() != DefaultSettleDelay {
		t.Errorf("SettleDelay = %v, want default %v", b.SettleDelay(), DefaultSettleDelay)
	}
}
