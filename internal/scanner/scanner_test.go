package scanner

import (
	"testing"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

// fixedClock returns a clock pinned to a GMT November weekday at 15:30 London,
// inside the gap-fill window.
func fixedClock() func() time.Time {
	at := time.Date(2026, time.November, 16, 15, 30, 0, 0, london)
	return func() time.Time { return at }
}

func clockAtHour(hour int) func() time.Time {
	at := time.Date(2026, time.November, 16, hour, 30, 0, 0, london)
	return func() time.Time { return at }
}

// oversoldStock passes every Setup 1 gate with room to spare.
func oversoldStock(symbol string) model.EnhancedStock {
	return model.EnhancedStock{
		Stock: model.Stock{
			Symbol:        symbol,
			Price:         105,
			ChangePercent: -10,
			MarketCap:     2_000_000_000,
		},
		Technicals: model.TechnicalIndicators{
			RSI:         39.9,
			SMA50:       110,
			SMA200:      100,
			VolumeSpike: 2.0,
		},
		News: model.NewsAnalysis{Clean: true},
	}
}

func TestScanForSetup_OversoldBounceAccepts(t *testing.T) {
	s := New(nil, fixedClock())
	got := s.ScanForSetup(model.SetupOversoldBounce, []model.EnhancedStock{oversoldStock("AAPL")})
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.Symbol != "AAPL" || c.SetupType != model.SetupOversoldBounce {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.ConvictionScore != 9 {
		t.Errorf("score %d, want 9", c.ConvictionScore)
	}
	if c.Recommendation != model.RecommendExceptional {
		t.Errorf("recommendation %s, want exceptional", c.Recommendation)
	}
	// Stop -5% and target +10% off the 105 entry.
	if c.CalculatedStop != 105*0.95 {
		t.Errorf("stop %.2f, want %.2f", c.CalculatedStop, 105*0.95)
	}
	if c.CalculatedTarget != 105*1.10 {
		t.Errorf("target %.2f, want %.2f", c.CalculatedTarget, 105*1.10)
	}
}

func TestScanForSetup_OversoldBounceRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.EnhancedStock)
	}{
		{"RSI exactly 40", func(s *model.EnhancedStock) { s.Technicals.RSI = 40.0 }},
		{"below 200-day MA", func(s *model.EnhancedStock) { s.Technicals.SMA200 = 106 }},
		{"bad news", func(s *model.EnhancedStock) { s.News.Clean = false }},
		{"weak volume", func(s *model.EnhancedStock) { s.Technicals.VolumeSpike = 1.4 }},
		{"drop too shallow", func(s *model.EnhancedStock) { s.ChangePercent = -7 }},
		{"drop too deep", func(s *model.EnhancedStock) { s.ChangePercent = -16 }},
		{"penny stock", func(s *model.EnhancedStock) { s.Price = 9.5 }},
		{"small cap", func(s *model.EnhancedStock) { s.MarketCap = 900_000_000 }},
		{"missing symbol", func(s *model.EnhancedStock) { s.Symbol = "" }},
		{"zero price", func(s *model.EnhancedStock) { s.Price = 0 }},
	}
	sc := New(nil, fixedClock())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := oversoldStock("AAPL")
			tt.mutate(&stock)
			got := sc.ScanForSetup(model.SetupOversoldBounce, []model.EnhancedStock{stock})
			if len(got) != 0 {
				t.Errorf("got %d candidates, want 0", len(got))
			}
		})
	}
}

func TestScanForSetup_EmptyInput(t *testing.T) {
	got := New(nil, fixedClock()).ScanForSetup(model.SetupOversoldBounce, nil)
	if got == nil {
		t.Fatal("result must be non-nil")
	}
	if len(got) != 0 {
		t.Fatalf("got %d candidates, want 0", len(got))
	}
}

func TestScanForSetup_Deterministic(t *testing.T) {
	// Identical stocks under different symbols tie on score; order must be
	// symbol-ascending and stable across runs.
	stocks := []model.EnhancedStock{
		oversoldStock("MSFT"),
		oversoldStock("AAPL"),
		oversoldStock("NVDA"),
	}
	sc := New(nil, fixedClock())
	first := sc.ScanForSetup(model.SetupOversoldBounce, stocks)
	if len(first) != 3 {
		t.Fatalf("got %d candidates, want 3", len(first))
	}
	for i, want := range []string{"AAPL", "MSFT", "NVDA"} {
		if first[i].Symbol != want {
			t.Errorf("position %d: got %s, want %s", i, first[i].Symbol, want)
		}
	}
	for run := 0; run < 5; run++ {
		again := sc.ScanForSetup(model.SetupOversoldBounce, stocks)
		for i := range first {
			if again[i].Symbol != first[i].Symbol || again[i].ConvictionScore != first[i].ConvictionScore {
				t.Fatalf("run %d: output differs at %d", run, i)
			}
		}
	}
}

func TestScanForSetup_SortsByScoreDescending(t *testing.T) {
	// Sympathy selloff lets the score differ: RSI above and below the
	// technical-confirmation threshold.
	high := model.EnhancedStock{
		Stock:      model.Stock{Symbol: "ZZZZ", Price: 50, ChangePercent: -6, MarketCap: 3_000_000_000},
		Technicals: model.TechnicalIndicators{RSI: 35, SMA200: 40},
		News:       model.NewsAnalysis{Clean: true},
	}
	low := high
	low.Symbol = "AAAA"
	low.Technicals.RSI = 55 // loses the oversold point

	got := New(nil, fixedClock()).ScanForSetup(model.SetupSympathySelloff, []model.EnhancedStock{low, high})
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Symbol != "ZZZZ" || got[1].Symbol != "AAAA" {
		t.Errorf("order %s,%s; want ZZZZ,AAAA", got[0].Symbol, got[1].Symbol)
	}
	if got[0].ConvictionScore <= got[1].ConvictionScore {
		t.Errorf("scores %d,%d not descending", got[0].ConvictionScore, got[1].ConvictionScore)
	}
}

func TestScanForSetup_GapFillTimeWindow(t *testing.T) {
	stock := model.EnhancedStock{
		Stock: model.Stock{
			Symbol:        "META",
			Price:         100,
			ChangePercent: -6,
			MarketCap:     2_000_000_000,
			DayLow:        95,
		},
		Technicals: model.TechnicalIndicators{RSI: 35, SMA200: 90, GapPercent: -6},
		News:       model.NewsAnalysis{Clean: true},
	}
	tests := []struct {
		hour int
		want int
	}{
		{14, 0},
		{15, 1},
		{16, 1},
		{17, 1},
		{18, 0},
	}
	for _, tt := range tests {
		got := New(nil, clockAtHour(tt.hour)).ScanForSetup(model.SetupGapFill, []model.EnhancedStock{stock})
		if len(got) != tt.want {
			t.Errorf("hour %d: got %d candidates, want %d", tt.hour, len(got), tt.want)
		}
	}
}

func TestScanForSetup_GapFillGates(t *testing.T) {
	base := model.EnhancedStock{
		Stock: model.Stock{
			Symbol:        "META",
			Price:         100,
			ChangePercent: -6,
			MarketCap:     2_000_000_000,
			DayLow:        95,
		},
		Technicals: model.TechnicalIndicators{RSI: 35, SMA200: 90, GapPercent: -6},
		News:       model.NewsAnalysis{Clean: true},
	}
	sc := New(nil, fixedClock())

	shallow := base
	shallow.Technicals.GapPercent = -4
	if got := sc.ScanForSetup(model.SetupGapFill, []model.EnhancedStock{shallow}); len(got) != 0 {
		t.Error("gap under 5% must not match")
	}

	gapUp := base
	gapUp.Technicals.GapPercent = 6
	gapUp.ChangePercent = -6
	if got := sc.ScanForSetup(model.SetupGapFill, []model.EnhancedStock{gapUp}); len(got) != 0 {
		t.Error("gap up must not match")
	}

	atLow := base
	atLow.Price = 95 // below dayLow*1.02, i.e. not holding above support
	if got := sc.ScanForSetup(model.SetupGapFill, []model.EnhancedStock{atLow}); len(got) != 0 {
		t.Error("price at the day low must not match")
	}
}

func TestScanForSetup_EarningsWindow(t *testing.T) {
	now := time.Date(2026, time.November, 16, 15, 30, 0, 0, london)
	mk := func(earnings time.Time) model.EnhancedStock {
		return model.EnhancedStock{
			Stock: model.Stock{
				Symbol:        "ADBE",
				Price:         400,
				ChangePercent: -12,
				MarketCap:     6_000_000_000,
			},
			Technicals: model.TechnicalIndicators{RSI: 35, SMA200: 350},
			News: model.NewsAnalysis{
				Clean:        true,
				HasEarnings:  true,
				EarningsDate: earnings,
			},
		}
	}
	sc := New(nil, func() time.Time { return now })
	tests := []struct {
		name     string
		earnings time.Time
		want     int
	}{
		{"reported today", now.Add(-2 * time.Hour), 1},
		{"one day ago", now.AddDate(0, 0, -1), 1},
		{"two days ago", now.AddDate(0, 0, -2), 1},
		{"three days ago", now.AddDate(0, 0, -3), 0},
		{"reports tomorrow", now.AddDate(0, 0, 1), 0},
		{"no earnings date", time.Time{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sc.ScanForSetup(model.SetupEarningsOverreaction, []model.EnhancedStock{mk(tt.earnings)})
			if len(got) != tt.want {
				t.Errorf("got %d candidates, want %d", len(got), tt.want)
			}
		})
	}
}

func TestScanForSetup_SupportBounce(t *testing.T) {
	base := model.EnhancedStock{
		Stock: model.Stock{
			Symbol:        "COST",
			Price:         100,
			ChangePercent: -2,
			MarketCap:     2_000_000_000,
		},
		Technicals: model.TechnicalIndicators{RSI: 45, SMA50: 99, SMA200: 85, VolumeSpike: 1.5},
		News:       model.NewsAnalysis{Clean: true},
	}
	sc := New(nil, fixedClock())

	if got := sc.ScanForSetup(model.SetupSupportBounce, []model.EnhancedStock{base}); len(got) != 1 {
		t.Fatalf("at the 50-day MA: got %d candidates, want 1", len(got))
	}

	far := base
	far.Technicals.SMA50 = 90 // more than 2% away from both MAs
	if got := sc.ScanForSetup(model.SetupSupportBounce, []model.EnhancedStock{far}); len(got) != 0 {
		t.Error("nowhere near an MA must not match")
	}

	broken := base
	broken.Technicals.SMA50 = 101 // within 2% but price is below the MA
	if got := sc.ScanForSetup(model.SetupSupportBounce, []model.EnhancedStock{broken}); len(got) != 0 {
		t.Error("price below the MA must not match")
	}
}

func TestScanAllSetups_CoversAllFive(t *testing.T) {
	results := New(nil, fixedClock()).ScanAllSetups(nil)
	if len(results) != len(model.AllSetupTypes) {
		t.Fatalf("got %d setup keys, want %d", len(results), len(model.AllSetupTypes))
	}
	for _, st := range model.AllSetupTypes {
		candidates, ok := results[st]
		if !ok {
			t.Errorf("missing setup %d", int(st))
			continue
		}
		if candidates == nil {
			t.Errorf("setup %d: candidates must be non-nil", int(st))
		}
	}
}

func TestTopCandidates_Truncates(t *testing.T) {
	stocks := []model.EnhancedStock{
		oversoldStock("AAPL"),
		oversoldStock("MSFT"),
		oversoldStock("NVDA"),
	}
	got := New(nil, fixedClock()).TopCandidates(model.SetupOversoldBounce, stocks, 2)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Symbol != "AAPL" || got[1].Symbol != "MSFT" {
		t.Errorf("order %s,%s; want AAPL,MSFT", got[0].Symbol, got[1].Symbol)
	}
}
