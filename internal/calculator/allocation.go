package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/lostmonster84/winmore/internal/setup"
)

// AllocationLimit describes the month's deployable-capital cap.
type AllocationLimit struct {
	Percent   float64
	Amount    float64
	Character string
}

// CurrentLimit looks up the month in the allocation table and applies it to
// the balance.
func CurrentLimit(balance float64, month time.Month) AllocationLimit {
	percent := setup.AllocationLimitPercent(month)
	return AllocationLimit{
		Percent:   percent,
		Amount:    balance * percent / 100,
		Character: setup.MonthCharacter(month),
	}
}

// AllocationResult is the outcome of a monthly-allocation check.
type AllocationResult struct {
	Valid     bool
	Available float64
	Limit     float64
	Reason    string
}

// ValidateAllocation rejects a trade when invested plus the proposed size
// exceeds the month's limit. The comparison is strict: a trade landing
// exactly on the limit passes.
func ValidateAllocation(balance, invested, proposed float64, month time.Month) AllocationResult {
	limit := CurrentLimit(balance, month)
	totalAfter := invested + proposed
	if totalAfter > limit.Amount {
		return AllocationResult{
			Valid:     false,
			Available: math.Max(0, limit.Amount-invested),
			Limit:     limit.Amount,
			Reason:    fmt.Sprintf("Trade would exceed monthly limit. Available: £%.2f", math.Max(0, limit.Amount-invested)),
		}
	}
	return AllocationResult{
		Valid:     true,
		Available: limit.Amount - totalAfter,
		Limit:     limit.Amount,
	}
}
