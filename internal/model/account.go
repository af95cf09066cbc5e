package model

import "time"

// Account is the Win More account view. Position sizes, the monthly limit,
// and availableToDeploy are always recomputed from the balance, never stored
// independently of it.
type Account struct {
	CurrentBalance float64
	Currency       string
	LastUpdated    time.Time

	StandardPositionSize    float64 // 5% of balance
	ExceptionalPositionSize float64 // 10% of balance

	CurrentMonth           time.Month
	MonthlyAllocationLimit float64
	CurrentlyInvested      float64
	CurrentlyInvestedPct   float64
	AvailableToDeploy      float64 // max(0, limit - invested)

	TotalTrades    int
	WinningTrades  int
	CurrentWinRate float64
}

// AccountState is what the account manager persists between runs.
type AccountState struct {
	Balance       float64   `json:"balance"`
	Invested      float64   `json:"invested"`
	SetupFocus    SetupType `json:"setup_focus"`
	TradesToday   int       `json:"trades_today"`
	TradeDay      string    `json:"trade_day"` // YYYY-MM-DD, Europe/London
	TotalTrades   int       `json:"total_trades"`
	WinningTrades int       `json:"winning_trades"`
	UpdatedAt     time.Time `json:"updated_at"`
}
