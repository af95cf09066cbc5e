package recorder

import "github.com/lostmonster84/winmore/internal/model"

// ScanSnapshot holds the outcome of one setup scan.
type ScanSnapshot struct {
	SetupType     model.SetupType
	StocksScanned int
	VIXLevel      float64
	Candidates    []model.SetupCandidate
}

// TradeCheck records one trade-level rule validation.
type TradeCheck struct {
	ID           string // uuid, assigned by the caller
	Symbol       string
	SetupType    model.SetupType
	PositionSize float64
	Valid        bool
	Errors       []string
	Balance      float64
	Invested     float64
	TradesToday  int
}

// AccountSnapshot records the account view at a point in time.
type AccountSnapshot struct {
	Account model.Account
	Focus   model.SetupType
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordScan(snap *ScanSnapshot) error
	RecordTradeCheck(evt *TradeCheck) error
	RecordAccount(snap *AccountSnapshot) error
	Close() error
}
