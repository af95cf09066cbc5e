package setup

import (
	"testing"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

func TestCatalog_ExactlyFiveSetups(t *testing.T) {
	if len(Setups) != 5 {
		t.Fatalf("expected 5 setups, got %d", len(Setups))
	}
	for _, st := range model.AllSetupTypes {
		def, ok := Setups[st]
		if !ok {
			t.Fatalf("missing definition for %s", st)
		}
		if def.ID != st {
			t.Errorf("%s: id mismatch, got %d", st, int(def.ID))
		}
	}
}

func TestCatalog_WinRateOrdering(t *testing.T) {
	want := []float64{70, 68, 65, 62, 60}
	for i, st := range model.AllSetupTypes {
		if got := Setups[st].TargetWinRate; got != want[i] {
			t.Errorf("%s: win rate %.0f, want %.0f", st, got, want[i])
		}
	}
}

func TestCatalog_StopsAndTargets(t *testing.T) {
	for st, def := range Setups {
		if def.StopLoss >= 0 {
			t.Errorf("%s: stop loss must be negative, got %.1f", st, def.StopLoss)
		}
		if def.ProfitTarget <= 0 {
			t.Errorf("%s: profit target must be positive, got %.1f", st, def.ProfitTarget)
		}
	}
	if Setups[model.SetupEarningsOverreaction].StopLoss != -7 {
		t.Error("earnings overreaction carries the wider -7% stop")
	}
}

func TestMustSetup_PanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown setup type")
		}
	}()
	MustSetup(model.SetupType(6))
}

func TestAllocationLimits_FixedPoints(t *testing.T) {
	tests := []struct {
		month time.Month
		want  float64
	}{
		{time.September, 30},
		{time.November, 80},
		{time.December, 70},
		{time.February, 80},
		{time.August, 40},
	}
	for _, tt := range tests {
		if got := AllocationLimitPercent(tt.month); got != tt.want {
			t.Errorf("%s: limit %.0f%%, want %.0f%%", tt.month, got, tt.want)
		}
	}
}

func TestAllocationLimits_TotalOverAllMonths(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		pct := AllocationLimitPercent(m)
		if pct < 30 || pct > 80 {
			t.Errorf("%s: limit %.0f%% outside 30-80 band", m, pct)
		}
		if MonthCharacter(m) == "" {
			t.Errorf("%s: missing month character", m)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: -15, Max: -8}
	tests := []struct {
		v    float64
		want bool
	}{
		{-15, true},
		{-8, true},
		{-10, true},
		{-7.9, false},
		{-15.1, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%.1f) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
