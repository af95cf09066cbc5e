package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

func TestValidateTrade_AllChecksPass(t *testing.T) {
	// Exactly 10% of the account, two trades already done, nothing invested,
	// November's 80% ceiling, setup matching focus. Every check lands on its
	// permissive boundary.
	v := ValidateTrade(TradeParams{
		AccountBalance:      10000,
		PositionSize:        1000,
		TradesExecutedToday: 2,
		CurrentInvestment:   0,
		Month:               time.November,
		TradeSetup:          model.SetupOversoldBounce,
		MonthlyFocus:        model.SetupOversoldBounce,
	})
	if !v.Valid {
		t.Fatalf("want valid, got errors: %v", v.Errors)
	}
	if len(v.Errors) != 0 {
		t.Errorf("want no errors, got %v", v.Errors)
	}
}

func TestValidateTrade_AllChecksFail(t *testing.T) {
	// Oversized position, daily limit hit, September allocation blown, and a
	// setup that ignores the month's focus. All four reasons must come back
	// together.
	v := ValidateTrade(TradeParams{
		AccountBalance:      10000,
		PositionSize:        1500,
		TradesExecutedToday: 3,
		CurrentInvestment:   2900,
		Month:               time.September,
		TradeSetup:          model.SetupGapFill,
		MonthlyFocus:        model.SetupOversoldBounce,
	})
	if v.Valid {
		t.Fatal("want invalid")
	}
	if len(v.Errors) != 4 {
		t.Fatalf("want 4 errors, got %d: %v", len(v.Errors), v.Errors)
	}
	wantFragments := []string{
		"exceeds maximum",
		"Daily limit reached",
		"exceed monthly limit",
		"Current month focus",
	}
	for i, frag := range wantFragments {
		if !strings.Contains(v.Errors[i], frag) {
			t.Errorf("error %d = %q, want it to mention %q", i, v.Errors[i], frag)
		}
	}
}

func TestValidateTrade_SingleFailureKeepsOthersClean(t *testing.T) {
	v := ValidateTrade(TradeParams{
		AccountBalance:      10000,
		PositionSize:        500,
		TradesExecutedToday: 0,
		CurrentInvestment:   0,
		Month:               time.November,
		TradeSetup:          model.SetupGapFill,
		MonthlyFocus:        model.SetupSupportBounce,
	})
	if v.Valid {
		t.Fatal("want invalid")
	}
	if len(v.Errors) != 1 {
		t.Fatalf("want exactly the focus error, got %v", v.Errors)
	}
	want := "Current month focus is Setup 2. Cannot trade Setup 5."
	if v.Errors[0] != want {
		t.Errorf("got %q, want %q", v.Errors[0], want)
	}
}

func TestValidateSetupFocus(t *testing.T) {
	if ok, _ := ValidateSetupFocus(model.SetupGapFill, model.SetupGapFill); !ok {
		t.Error("matching setup must pass")
	}
	ok, reason := ValidateSetupFocus(model.SetupGapFill, model.SetupOversoldBounce)
	if ok {
		t.Fatal("mismatched setup must fail")
	}
	if !strings.Contains(reason, "Setup 1") || !strings.Contains(reason, "Setup 5") {
		t.Errorf("reason %q must name both setups", reason)
	}
}
