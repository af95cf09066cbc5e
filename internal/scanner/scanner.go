// Package scanner classifies enhanced stock records into the five Win More
// setups and ranks survivors by conviction score. Evaluation is pure: every
// input the scanner looks at, including the clock, is injected.
package scanner

import (
	"sort"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
	"github.com/lostmonster84/winmore/internal/setup"
)

var london *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.FixedZone("BST", 3600)
	}
	london = loc
}

// Scanner evaluates stocks against the setup catalog.
type Scanner struct {
	vix *model.VIX
	now func() time.Time
}

// New creates a Scanner. vix may be nil, in which case DefaultVIXLevel is
// assumed. now may be nil, in which case time.Now is used; tests and callers
// embedding the scanner in a pipeline supply their own clock.
func New(vix *model.VIX, now func() time.Time) *Scanner {
	if now == nil {
		now = time.Now
	}
	return &Scanner{vix: vix, now: now}
}

func (s *Scanner) vixLevel() float64 {
	if s.vix == nil {
		return DefaultVIXLevel
	}
	return s.vix.Value
}

// ScanForSetup evaluates every stock against one setup and returns the
// surviving candidates sorted by conviction score descending. Ties are
// broken by symbol ascending, so identical inputs always produce identical
// output. An empty stock list yields an empty, non-nil slice.
func (s *Scanner) ScanForSetup(t model.SetupType, stocks []model.EnhancedStock) []model.SetupCandidate {
	candidates := make([]model.SetupCandidate, 0, len(stocks))
	now := s.now()
	for _, stock := range stocks {
		if c, ok := s.evaluate(stock, t, now); ok {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ConvictionScore != candidates[j].ConvictionScore {
			return candidates[i].ConvictionScore > candidates[j].ConvictionScore
		}
		return candidates[i].Symbol < candidates[j].Symbol
	})
	return candidates
}

// ScanAllSetups evaluates every stock against every setup independently.
// The result map always carries all five setup types.
func (s *Scanner) ScanAllSetups(stocks []model.EnhancedStock) map[model.SetupType][]model.SetupCandidate {
	results := make(map[model.SetupType][]model.SetupCandidate, len(model.AllSetupTypes))
	for _, t := range model.AllSetupTypes {
		results[t] = s.ScanForSetup(t, stocks)
	}
	return results
}

// TopCandidates returns at most limit candidates for the month's focus setup.
func (s *Scanner) TopCandidates(focus model.SetupType, stocks []model.EnhancedStock, limit int) []model.SetupCandidate {
	candidates := s.ScanForSetup(focus, stocks)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// evaluate runs the full gate chain for one (stock, setup) pair: basic
// criteria, the setup predicate, then the conviction gate.
func (s *Scanner) evaluate(stock model.EnhancedStock, t model.SetupType, now time.Time) (model.SetupCandidate, bool) {
	// Malformed inputs disqualify the candidate, never the batch.
	if stock.Symbol == "" || stock.Price <= 0 {
		return model.SetupCandidate{}, false
	}

	def := setup.MustSetup(t)
	if !passesBasicCriteria(stock, def) {
		return model.SetupCandidate{}, false
	}

	var matched bool
	switch t {
	case model.SetupOversoldBounce:
		matched = matchesOversoldBounce(stock)
	case model.SetupSupportBounce:
		matched = matchesSupportBounce(stock)
	case model.SetupEarningsOverreaction:
		matched = matchesEarningsOverreaction(stock, now)
	case model.SetupSympathySelloff:
		matched = matchesSympathySelloff(stock)
	case model.SetupGapFill:
		matched = matchesGapFill(stock, now.In(london).Hour())
	}
	if !matched {
		return model.SetupCandidate{}, false
	}

	scoring := ScoreCandidate(ScoreInput{
		SetupType:     t,
		RSI:           stock.Technicals.RSI,
		Above200DayMA: stock.Price > stock.Technicals.SMA200,
		NewsClean:     stock.News.Clean,
	}, s.vixLevel())
	if scoring.Score < minTradeScore {
		return model.SetupCandidate{}, false
	}

	return model.SetupCandidate{
		Symbol:              stock.Symbol,
		SetupType:           t,
		ConvictionScore:     scoring.Score,
		ConvictionBreakdown: scoring.Breakdown,
		Recommendation:      scoring.Recommendation,
		CurrentPrice:        stock.Price,
		RecommendedEntry:    stock.Price,
		CalculatedStop:      stock.Price * (1 + def.StopLoss/100),
		CalculatedTarget:    stock.Price * (1 + def.ProfitTarget/100),
		RSI:                 stock.Technicals.RSI,
		Above50DayMA:        stock.Price > stock.Technicals.SMA50,
		Above200DayMA:       stock.Price > stock.Technicals.SMA200,
		VolumeVsAverage:     stock.Technicals.VolumeSpike,
		NewsClean:           stock.News.Clean,
		LastNewsCheck:       stock.News.LastChecked,
		Timestamp:           now,
	}, true
}
