package scanner

import "github.com/lostmonster84/winmore/internal/model"

// DefaultVIXLevel is assumed when no VIX observation is available.
const DefaultVIXLevel = 16.0

// vixElevatedThreshold is the level above which volatility earns a point.
const vixElevatedThreshold = 19.0

// Recommendation thresholds: below minTradeScore nothing is tradeable, at or
// above exceptionalScore the 10% size unlocks.
const (
	minTradeScore    = 5
	exceptionalScore = 8
)

// ScoreInput is the candidate slice of state the scorer looks at.
type ScoreInput struct {
	SetupType     model.SetupType
	RSI           float64
	Above200DayMA bool
	NewsClean     bool
}

// Scoring is a conviction score with its breakdown and sizing guidance.
type Scoring struct {
	Score          int
	Breakdown      model.ConvictionBreakdown
	Recommendation model.Recommendation
}

// ScoreCandidate computes the 0-10 conviction score from five independently
// bounded sub-scores. The scorer assumes the caller already ran the setup
// predicate: a candidate with a declared setup type earns the full match
// points.
func ScoreCandidate(in ScoreInput, vixLevel float64) Scoring {
	var b model.ConvictionBreakdown

	if in.SetupType.Valid() {
		b.MatchesSetup = 3
	}
	if in.RSI < 40 {
		b.TechnicalConfirmation++
	}
	if in.Above200DayMA {
		b.TechnicalConfirmation++
	}
	if in.NewsClean {
		b.NoBadNews = 2
	}
	// Placeholder for future manual input; major stocks assumed understood.
	b.BusinessUnderstanding = 2
	if vixLevel > vixElevatedThreshold {
		b.VIXElevated = 1
	}

	total := b.Total()
	var rec model.Recommendation
	switch {
	case total < minTradeScore:
		rec = model.RecommendNoTrade
	case total >= exceptionalScore:
		rec = model.RecommendExceptional
	default:
		rec = model.RecommendStandard
	}

	return Scoring{Score: total, Breakdown: b, Recommendation: rec}
}
