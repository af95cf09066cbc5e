package calculator

import (
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

// AssessVIX grades a VIX reading on the Win More opportunity scale and
// attaches the position-size guidance for that level.
func AssessVIX(value float64, ts time.Time) model.VIX {
	v := model.VIX{Value: value, Timestamp: ts}
	switch {
	case value < 15:
		v.Level = model.OpportunityNormal
		v.Interpretation = "Normal market conditions. Trade carefully, small sizes only."
		v.SizeGuidance = "5% only"
	case value < 17:
		v.Level = model.OpportunityStandard
		v.Interpretation = "Standard market conditions. Regular 5% positions acceptable."
		v.SizeGuidance = "5% standard"
	case value < 19:
		v.Level = model.OpportunityInteresting
		v.Interpretation = "Market getting interesting. Better setups appearing."
		v.SizeGuidance = "5% standard"
	case value < 21:
		v.Level = model.OpportunityOpportunities
		v.Interpretation = "Market opportunities emerging. Quality stocks on sale."
		v.SizeGuidance = "5-10% available"
	default:
		v.Level = model.OpportunityRareGift
		v.Interpretation = "Rare opportunity environment. Can use 10% positions on best setups."
		v.SizeGuidance = "5-10% available"
	}
	return v
}
