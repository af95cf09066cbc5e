// Package calculator holds the pure Win More sizing, allocation, daily-limit,
// and VIX assessment functions. Everything here is a function of its inputs;
// sizes are never cached independently of the balance that produced them.
package calculator

import "fmt"

const (
	standardPercent    = 0.05
	exceptionalPercent = 0.10
)

// StandardPosition returns the 5% standard position size for the balance.
func StandardPosition(balance float64) float64 {
	return balance * standardPercent
}

// ExceptionalPosition returns the 10% exceptional position size for the balance.
func ExceptionalPosition(balance float64) float64 {
	return balance * exceptionalPercent
}

// PositionSizeResult is the outcome of a position-size check.
type PositionSizeResult struct {
	Valid      bool
	MaxAllowed float64
	Reason     string
}

// ValidatePositionSize rejects sizes above the exceptional position.
// A size exactly at 10% of the balance is allowed.
func ValidatePositionSize(balance, size float64) PositionSizeResult {
	maxAllowed := ExceptionalPosition(balance)
	if size > maxAllowed {
		return PositionSizeResult{
			Valid:      false,
			MaxAllowed: maxAllowed,
			Reason:     fmt.Sprintf("Position size £%.2f exceeds maximum £%.2f (10%% of account)", size, maxAllowed),
		}
	}
	return PositionSizeResult{Valid: true, MaxAllowed: maxAllowed}
}
