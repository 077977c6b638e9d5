package snapshot

import (
	"context"
	"math"
	"testing"
)

func TestDeriveTemperatures(t *testing.T) {
	readings := deriveTemperatures(50.0)

	if len(readings) != 2 {
		t.Fatalf("len = %d, want 2", len(readings))
	}

	pkg := readings[0]
	if pkg.Label != "CPU Package" {
		t.Errorf("Label = %q, want CPU Package", pkg.Label)
	}
	if math.Abs(pkg.Current-70.0) > 1e-9 {
		t.Errorf("CPU Package = %v, want 70.0 (45 + 50*0.5)", pkg.Current)
	}
	if !pkg.Synthetic {
		t.Error("CPU Package reading not marked synthetic")
	}
	if pkg.Max == nil || pkg.Critical == nil {
		t.Error("CPU Package should carry max and critical thresholds")
	}

	sys := readings[1]
	if sys.Label != "System" {
		t.Errorf("Label = %q, want System", sys.Label)
	}
	if math.Abs(sys.Current-50.0) > 1e-9 {
		t.Errorf("System = %v, want 50.0 (35 + 50*0.3)", sys.Current)
	}
	if !sys.Synthetic {
		t.Error("System reading not marked synthetic")
	}
}

func TestTemperatures_IdleBaselines(t *testing.T) {
	b := New(0, nil)
	readings, err := b.Temperatures(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != 2 {
		t.Fatalf("len = %d, want 2", len(readings))
	}
	if readings[0].Current != 45.0 {
		t.Errorf("CPU Package baseline = %v, want 45.0", readings[0].Current)
	}
	if readings[1].Current != 35.0 {
		t.Errorf("System baseline = %v, want 35.0", readings[1].Current)
	}
}
