package generator

import (
	"strings"
	"testing"
)

var testThresholds = DriftThresholds{
	Speed:     15,
	LengthMin: 300,
	LengthMax: 1500,
	PSI:       50,
}

func TestComputePSI_WorkedExample(t *testing.T) {
	// 0.3*5 + 0.4*70 + 0.3*(500/1000) = 1.5 + 28 + 0.15 = 29.65
	if got := ComputePSI(5, 70, 500); got != 29.65 {
		t.Errorf("ComputePSI(5, 70, 500) = %v, want 29.65", got)
	}
}

func TestComputePSI_Rounding(t *testing.T) {
	// 0.3*1.111 + 0.4*0 + 0.3*0 = 0.3333 -> 0.33
	if got := ComputePSI(1.111, 0, 0); got != 0.33 {
		t.Errorf("ComputePSI(1.111, 0, 0) = %v, want 0.33", got)
	}
}

func TestClassifyDrift_AllNormal(t *testing.T) {
	a := ClassifyDrift(5, 70, 500, Band{60, 80}, testThresholds)

	if a.IsDrifting {
		t.Errorf("expected no drift, got reasons %v", a.Reasons)
	}
	if len(a.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", a.Reasons)
	}
	if a.PSI != 29.65 {
		t.Errorf("psi = %v, want 29.65", a.PSI)
	}
}

func TestClassifyDrift_SpeedOnly(t *testing.T) {
	a := ClassifyDrift(20, 70, 500, Band{60, 80}, testThresholds)

	if !a.IsDrifting {
		t.Fatal("expected drift for speed > threshold")
	}
	if len(a.Reasons) != 1 || !strings.HasPrefix(a.Reasons[0], "Speed drift") {
		t.Errorf("expected a single Speed drift reason, got %v", a.Reasons)
	}
}

func TestClassifyDrift_FleschOutsideBand(t *testing.T) {
	a := ClassifyDrift(5, 85, 500, Band{60, 80}, testThresholds)

	if len(a.Reasons) != 1 || !strings.HasPrefix(a.Reasons[0], "Flesch drift") {
		t.Errorf("expected a single Flesch drift reason, got %v", a.Reasons)
	}
}

func TestClassifyDrift_LengthOutOfRange(t *testing.T) {
	short := ClassifyDrift(5, 70, 100, Band{60, 80}, testThresholds)
	if len(short.Reasons) != 1 || !strings.HasPrefix(short.Reasons[0], "Length drift") {
		t.Errorf("expected Length drift for short story, got %v", short.Reasons)
	}

	long := ClassifyDrift(5, 70, 2000, Band{60, 80}, testThresholds)
	if len(long.Reasons) != 1 || !strings.HasPrefix(long.Reasons[0], "Length drift") {
		t.Errorf("expected Length drift for long story, got %v", long.Reasons)
	}
}

func TestClassifyDrift_PSIOverThreshold(t *testing.T) {
	// 0.3*14 + 0.4*95 + 0.3*(1400/1000) = 4.2 + 38 + 0.42 = 42.62 under threshold
	// with flesch inside a wide band nothing fires; raise speed to push psi over.
	a := ClassifyDrift(14, 95, 1400, Band{80, 100}, testThresholds)
	if a.IsDrifting {
		t.Errorf("expected no drift at psi=42.62, got %v", a.Reasons)
	}

	// 0.3*14 + 0.4*120 + 0.3*1.4 = 4.2 + 48 + 0.42 = 52.62 over threshold,
	// but flesch 120 is also outside any band, so two reasons collect.
	b := ClassifyDrift(14, 120, 1400, Band{80, 100}, testThresholds)
	if len(b.Reasons) != 2 {
		t.Fatalf("expected Flesch and PSI reasons, got %v", b.Reasons)
	}
	if !strings.HasPrefix(b.Reasons[0], "Flesch drift") {
		t.Errorf("first reason should be Flesch drift, got %q", b.Reasons[0])
	}
	if !strings.HasPrefix(b.Reasons[1], "Performance & Suitability Index drift") {
		t.Errorf("second reason should be PSI drift, got %q", b.Reasons[1])
	}
}

func TestClassifyDrift_CollectsAllReasons(t *testing.T) {
	// Slow, unreadable, short, and composite all at once.
	a := ClassifyDrift(120, 10, 50, Band{80, 100}, testThresholds)

	if len(a.Reasons) != 3 {
		t.Fatalf("expected speed+flesch+length reasons, got %v", a.Reasons)
	}
	wantPrefixes := []string{"Speed drift", "Flesch drift", "Length drift"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(a.Reasons[i], prefix) {
			t.Errorf("reason %d = %q, want prefix %q", i, a.Reasons[i], prefix)
		}
	}
}
