package account

import (
	"math"
	"time"

	"github.com/lostmonster84/winmore/internal/calculator"
	"github.com/lostmonster84/winmore/internal/model"
)

// CreateAccount builds a fresh Win More account view from a balance.
// Position sizes and the monthly limit are derived, never stored.
func CreateAccount(balance float64, now time.Time) model.Account {
	limit := calculator.CurrentLimit(balance, now.Month())
	return model.Account{
		CurrentBalance:          balance,
		Currency:                "GBP",
		LastUpdated:             now,
		StandardPositionSize:    calculator.StandardPosition(balance),
		ExceptionalPositionSize: calculator.ExceptionalPosition(balance),
		CurrentMonth:            now.Month(),
		MonthlyAllocationLimit:  limit.Amount,
		AvailableToDeploy:       limit.Amount,
	}
}

// UpdateAccount recomputes everything balance-derived for the new balance
// and investment, carrying the performance counters over unchanged.
func UpdateAccount(a model.Account, newBalance, newInvestment float64, now time.Time) model.Account {
	limit := calculator.CurrentLimit(newBalance, now.Month())
	investedPct := 0.0
	if newBalance > 0 {
		investedPct = newInvestment / newBalance * 100
	}

	a.CurrentBalance = newBalance
	a.LastUpdated = now
	a.StandardPositionSize = calculator.StandardPosition(newBalance)
	a.ExceptionalPositionSize = calculator.ExceptionalPosition(newBalance)
	a.CurrentMonth = now.Month()
	a.MonthlyAllocationLimit = limit.Amount
	a.CurrentlyInvested = newInvestment
	a.CurrentlyInvestedPct = investedPct
	a.AvailableToDeploy = math.Max(0, limit.Amount-newInvestment)
	return a
}
