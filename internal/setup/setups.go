// Package setup holds the five Win More setup definitions and the monthly
// allocation table. Both are fixed data, not user-editable.
package setup

import (
	"fmt"

	"github.com/lostmonster84/winmore/internal/model"
)

// Range is an inclusive numeric band.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls within the band.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MARequirement names which moving average a setup demands the price hold.
type MARequirement string

const (
	MANone      MARequirement = ""
	MA200Day    MARequirement = "200-day"
	MAAboveBoth MARequirement = "above-both"
)

// NewsRequirement names the news condition a setup demands.
type NewsRequirement string

const (
	NewsNoBadNews     NewsRequirement = "no-bad-news"
	NewsEarningsMiss  NewsRequirement = "earnings-miss"
	NewsSectorSelloff NewsRequirement = "sector-selloff"
	NewsGapNoNews     NewsRequirement = "gap-no-news"
)

// Criteria is a setup's eligibility configuration.
type Criteria struct {
	PriceChange       Range
	RSIThreshold      float64 // 0 when the setup has no RSI requirement
	MARequirement     MARequirement
	NewsRequirement   NewsRequirement
	VolumeRequirement float64 // multiple of average volume, 0 when unused
	HoldDays          Range
}

// Setup is one of the five immutable Win More setup definitions.
type Setup struct {
	ID            model.SetupType
	Name          string
	Description   string
	TargetWinRate float64
	Criteria      Criteria
	ProfitTarget  float64 // percent
	StopLoss      float64 // negative percent
}

// Setups is the full catalog, keyed by setup type. Exactly five entries,
// win rates 70/68/65/62/60 in decreasing selectivity.
var Setups = map[model.SetupType]Setup{
	model.SetupOversoldBounce: {
		ID:            model.SetupOversoldBounce,
		Name:          "Oversold Quality Bounce",
		Description:   "Stock down 8-15% on market fear (no bad news), RSI <40, above 200-day MA",
		TargetWinRate: 70,
		Criteria: Criteria{
			PriceChange:       Range{Min: -15, Max: -8},
			RSIThreshold:      40,
			MARequirement:     MA200Day,
			NewsRequirement:   NewsNoBadNews,
			VolumeRequirement: 1.5,
			HoldDays:          Range{Min: 3, Max: 7},
		},
		ProfitTarget: 10,
		StopLoss:     -5,
	},
	model.SetupSupportBounce: {
		ID:            model.SetupSupportBounce,
		Name:          "Support Bounce",
		Description:   "Stock at 50 or 200-day MA, 3+ previous bounces, volume confirmation",
		TargetWinRate: 68,
		Criteria: Criteria{
			PriceChange:       Range{Min: -5, Max: 2},
			MARequirement:     MAAboveBoth,
			NewsRequirement:   NewsNoBadNews,
			VolumeRequirement: 1.3,
			HoldDays:          Range{Min: 5, Max: 10},
		},
		ProfitTarget: 10,
		StopLoss:     -5,
	},
	model.SetupEarningsOverreaction: {
		ID:            model.SetupEarningsOverreaction,
		Name:          "Earnings Overreaction",
		Description:   "Good company drops >10% on slight miss, revenue growing, guidance maintained",
		TargetWinRate: 65,
		Criteria: Criteria{
			PriceChange:     Range{Min: -25, Max: -10},
			NewsRequirement: NewsEarningsMiss,
			HoldDays:        Range{Min: 5, Max: 14},
		},
		ProfitTarget: 12.5,
		StopLoss:     -7,
	},
	model.SetupSympathySelloff: {
		ID:            model.SetupSympathySelloff,
		Name:          "Sympathy Selloff",
		Description:   "Best company down with weak peers, no company-specific news",
		TargetWinRate: 62,
		Criteria: Criteria{
			PriceChange:     Range{Min: -12, Max: -5},
			NewsRequirement: NewsSectorSelloff,
			HoldDays:        Range{Min: 3, Max: 5},
		},
		ProfitTarget: 9,
		StopLoss:     -5,
	},
	model.SetupGapFill: {
		ID:            model.SetupGapFill,
		Name:          "Gap Fill",
		Description:   "Gap down >5% on no news, holding above support",
		TargetWinRate: 60,
		Criteria: Criteria{
			PriceChange:     Range{Min: -15, Max: -5},
			NewsRequirement: NewsGapNoNews,
			HoldDays:        Range{Min: 1, Max: 3},
		},
		ProfitTarget: 6,
		StopLoss:     -5,
	},
}

// MustSetup returns the definition for t. An undeclared setup type is a
// programming error, so it panics rather than returning an error.
func MustSetup(t model.SetupType) Setup {
	s, ok := Setups[t]
	if !ok {
		panic(fmt.Sprintf("setup: unknown setup type %d", int(t)))
	}
	return s
}
