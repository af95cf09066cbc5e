package model

import "time"

// Stock is a quote snapshot. It is replaced wholesale on each refresh,
// never patched in place.
type Stock struct {
	Symbol        string
	Name          string
	Price         float64
	PreviousClose float64
	Change        float64
	ChangePercent float64
	Volume        float64
	AvgVolume     float64
	MarketCap     float64
	High52Week    float64
	Low52Week     float64
	DayHigh       float64
	DayLow        float64
	LastUpdated   time.Time
}

// MACD holds the MACD line, signal line, and histogram.
type MACD struct {
	Value     float64
	Signal    float64
	Histogram float64
}

// TechnicalIndicators are derived per evaluation; no history is persisted.
type TechnicalIndicators struct {
	RSI         float64 // 0-100
	SMA20       float64
	SMA50       float64
	SMA200      float64
	MACD        MACD
	VolumeSpike float64 // multiple of average volume
	GapPercent  float64 // open gap vs previous close, percent
	FromLow52W  float64 // percent above the 52-week low
	FromHigh52W float64 // percent below the 52-week high
}

// Sentiment classifies recent news coverage.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// NewsAnalysis is a short-lived per-stock news verdict.
type NewsAnalysis struct {
	Clean        bool
	Sentiment    Sentiment
	HasEarnings  bool
	EarningsDate time.Time // zero when HasEarnings is false
	LastChecked  time.Time
}

// EnhancedStock is the unit the setup scanner consumes.
type EnhancedStock struct {
	Stock
	Technicals TechnicalIndicators
	News       NewsAnalysis
}

// Position is a single broker holding.
type Position struct {
	Symbol       string
	Quantity     float64
	AveragePrice float64
	CurrentPrice float64
}

// Portfolio is the broker account snapshot the engine consumes as input.
type Portfolio struct {
	Cash          float64
	InvestedValue float64
	Positions     []Position
	FetchedAt     time.Time
}
