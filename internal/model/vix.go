package model

import "time"

// OpportunityLevel grades a VIX reading on the Win More deployment scale.
type OpportunityLevel string

const (
	OpportunityNormal        OpportunityLevel = "NORMAL"
	OpportunityStandard      OpportunityLevel = "STANDARD"
	OpportunityInteresting   OpportunityLevel = "INTERESTING"
	OpportunityOpportunities OpportunityLevel = "OPPORTUNITIES"
	OpportunityRareGift      OpportunityLevel = "RARE_GIFT"
)

// VIX is a volatility observation plus its Win More interpretation.
type VIX struct {
	Value          float64
	Timestamp      time.Time
	Level          OpportunityLevel
	Interpretation string
	SizeGuidance   string
}
