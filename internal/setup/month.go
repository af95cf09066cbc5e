package setup

import "time"

// MonthlyAllocationLimits is the seasonal percent-of-balance cap per
// calendar month. September is survival mode, November the most active.
var MonthlyAllocationLimits = map[time.Month]float64{
	time.January:   70,
	time.February:  80,
	time.March:     70,
	time.April:     70,
	time.May:       60,
	time.June:      50,
	time.July:      50,
	time.August:    40,
	time.September: 30,
	time.October:   60,
	time.November:  80,
	time.December:  70,
}

// AllocationLimitPercent returns the allocation cap for the given month.
// Total over all twelve months.
func AllocationLimitPercent(m time.Month) float64 {
	return MonthlyAllocationLimits[m]
}

var monthCharacters = map[time.Month]string{
	time.January:   "New year momentum - Quality setups only",
	time.February:  "Earnings season - Best opportunities only",
	time.March:     "Quarter-end - Book profits",
	time.April:     "Spring trading - Stay selective",
	time.May:       "Sell in May - Reduce activity",
	time.June:      "Summer begins - Defensive",
	time.July:      "Low volume - Minimal trades",
	time.August:    "Pre-September - Build cash",
	time.September: "WORST MONTH - Survival mode only",
	time.October:   "Volatility - Selective buying",
	time.November:  "BEST MONTH - Most active",
	time.December:  "Year-end - Take profits",
}

// MonthCharacter returns the one-line seasonal description for the month.
func MonthCharacter(m time.Month) string {
	return monthCharacters[m]
}
