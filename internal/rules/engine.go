// Package rules composes the position-size, daily-limit, monthly-allocation,
// and setup-focus validators into a single trade-level decision.
package rules

import (
	"fmt"
	"time"

	"github.com/lostmonster84/winmore/internal/calculator"
	"github.com/lostmonster84/winmore/internal/model"
)

// TradeParams is everything a trade-level validation needs. All values are
// snapshots supplied by the caller; the engine holds no state.
type TradeParams struct {
	AccountBalance      float64
	PositionSize        float64
	TradesExecutedToday int
	CurrentInvestment   float64
	Month               time.Month
	TradeSetup          model.SetupType
	MonthlyFocus        model.SetupType
}

// TradeValidation is the combined decision with every failing reason.
type TradeValidation struct {
	Valid  bool
	Errors []string
}

// ValidateSetupFocus rejects a trade whose setup differs from the month's
// single chosen focus.
func ValidateSetupFocus(trade, focus model.SetupType) (bool, string) {
	if trade != focus {
		return false, fmt.Sprintf("Current month focus is %s. Cannot trade %s.", focus, trade)
	}
	return true, ""
}

// ValidateTrade runs all four checks and reports every failure together, so
// a caller can show the complete list of blocking reasons at once. No check
// short-circuits the others.
func ValidateTrade(p TradeParams) TradeValidation {
	var errs []string

	if r := calculator.ValidatePositionSize(p.AccountBalance, p.PositionSize); !r.Valid {
		errs = append(errs, r.Reason)
	}
	if r := calculator.ValidateDailyLimit(p.TradesExecutedToday); !r.Valid {
		errs = append(errs, r.Reason)
	}
	if r := calculator.ValidateAllocation(p.AccountBalance, p.CurrentInvestment, p.PositionSize, p.Month); !r.Valid {
		errs = append(errs, r.Reason)
	}
	if ok, reason := ValidateSetupFocus(p.TradeSetup, p.MonthlyFocus); !ok {
		errs = append(errs, reason)
	}

	return TradeValidation{Valid: len(errs) == 0, Errors: errs}
}
