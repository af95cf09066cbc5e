package model

import "time"

// Recommendation is the position-sizing guidance attached to a conviction score.
type Recommendation string

const (
	RecommendNoTrade     Recommendation = "NO TRADE"
	RecommendStandard    Recommendation = "5% standard"
	RecommendExceptional Recommendation = "10% exceptional"
)

// ConvictionBreakdown is the five independently bounded sub-scores that sum
// into the 0-10 conviction score.
type ConvictionBreakdown struct {
	MatchesSetup          int // 0-3
	TechnicalConfirmation int // 0-2
	NoBadNews             int // 0 or 2
	BusinessUnderstanding int // fixed 2 until manual input exists
	VIXElevated           int // 0 or 1
}

// Total sums the sub-scores.
func (b ConvictionBreakdown) Total() int {
	return b.MatchesSetup + b.TechnicalConfirmation + b.NoBadNews +
		b.BusinessUnderstanding + b.VIXElevated
}

// SetupCandidate is a stock that survived a setup's gates. Created fresh per
// scan and never mutated, only replaced.
type SetupCandidate struct {
	Symbol              string
	SetupType           SetupType
	ConvictionScore     int
	ConvictionBreakdown ConvictionBreakdown
	Recommendation      Recommendation
	CurrentPrice        float64
	RecommendedEntry    float64
	CalculatedStop      float64
	CalculatedTarget    float64
	RSI                 float64
	Above50DayMA        bool
	Above200DayMA       bool
	VolumeVsAverage     float64
	NewsClean           bool
	LastNewsCheck       time.Time
	Timestamp           time.Time
}
