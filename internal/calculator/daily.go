package calculator

import (
	"fmt"
	"time"
)

// MaxTradesPerDay is the Win More daily trade cap.
const MaxTradesPerDay = 3

var london *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.FixedZone("BST", 3600)
	}
	london = loc
}

// DailyLimits is the day's trading-count view, reset at midnight UK time.
type DailyLimits struct {
	MaxTradesPerDay     int
	TradesExecutedToday int
	CanTrade            bool
	NextReset           time.Time
}

// Limits builds the daily-limit view for the given trade count and clock.
func Limits(tradesToday int, now time.Time) DailyLimits {
	uk := now.In(london)
	nextMidnight := time.Date(uk.Year(), uk.Month(), uk.Day(), 0, 0, 0, 0, london).AddDate(0, 0, 1)
	return DailyLimits{
		MaxTradesPerDay:     MaxTradesPerDay,
		TradesExecutedToday: tradesToday,
		CanTrade:            tradesToday < MaxTradesPerDay,
		NextReset:           nextMidnight,
	}
}

// DailyLimitResult is the outcome of a daily-limit check.
type DailyLimitResult struct {
	Valid     bool
	Remaining int
	Reason    string
}

// ValidateDailyLimit passes only while strictly fewer than MaxTradesPerDay
// trades have been executed today.
func ValidateDailyLimit(tradesToday int) DailyLimitResult {
	remaining := MaxTradesPerDay - tradesToday
	if remaining <= 0 {
		return DailyLimitResult{
			Valid:  false,
			Reason: fmt.Sprintf("Daily limit reached (%d trades maximum)", MaxTradesPerDay),
		}
	}
	return DailyLimitResult{Valid: true, Remaining: remaining}
}
