package enrich

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lostmonster84/winmore/internal/model"
)

func TestEnrich_JoinsAndSkips(t *testing.T) {
	technicals := StaticTechnicals{
		"AAPL": {RSI: 38, SMA200: 150, VolumeSpike: 1.8},
		"MSFT": {RSI: 55, SMA200: 300},
	}
	news := StaticNews{
		"AAPL": {Clean: true, Sentiment: model.SentimentNeutral},
		// MSFT deliberately absent: the news provider cannot serve it.
	}
	e := NewEnricher(technicals, news)

	stocks := []model.Stock{
		{Symbol: "AAPL", Price: 180},
		{Symbol: "MSFT", Price: 400},  // no news fixture
		{Symbol: "NVDA", Price: 900},  // no fixtures at all
		{Symbol: "", Price: 50},       // malformed
		{Symbol: "TSLA", Price: 0},    // malformed
	}
	got := e.Enrich(stocks)

	if len(got) != 1 {
		t.Fatalf("got %d enhanced stocks, want 1", len(got))
	}
	if got[0].Symbol != "AAPL" {
		t.Fatalf("got %s, want AAPL", got[0].Symbol)
	}
	if got[0].Technicals.RSI != 38 || !got[0].News.Clean {
		t.Errorf("fixture data not joined: %+v", got[0])
	}
}

func TestEnrich_EmptyInput(t *testing.T) {
	e := NewEnricher(StaticTechnicals{}, StaticNews{})
	got := e.Enrich(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", got)
	}
}

func TestLoadFixtures(t *testing.T) {
	content := `
AAPL:
  rsi: 38.5
  sma50: 170
  sma200: 150
  volume_spike: 1.8
  news_clean: true
  sentiment: positive
NVDA:
  rsi: 62
  sma200: 700
  gap_percent: -6.5
  news_clean: true
  has_earnings: true
  earnings_days_ago: 1
`
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	technicals, news, err := LoadFixtures(path)
	if err != nil {
		t.Fatal(err)
	}

	aapl := technicals["AAPL"]
	if aapl.RSI != 38.5 || aapl.SMA200 != 150 || aapl.VolumeSpike != 1.8 {
		t.Errorf("AAPL technicals: %+v", aapl)
	}
	if news["AAPL"].Sentiment != model.SentimentPositive {
		t.Errorf("AAPL sentiment %s, want positive", news["AAPL"].Sentiment)
	}

	nvda := news["NVDA"]
	if !nvda.HasEarnings || nvda.EarningsDate.IsZero() {
		t.Errorf("NVDA earnings not populated: %+v", nvda)
	}
	if technicals["NVDA"].GapPercent != -6.5 {
		t.Errorf("NVDA gap %.2f, want -6.5", technicals["NVDA"].GapPercent)
	}
}

func TestLoadFixtures_DefaultsSentimentToNeutral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte("AAPL:\n  rsi: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, news, err := LoadFixtures(path)
	if err != nil {
		t.Fatal(err)
	}
	if news["AAPL"].Sentiment != model.SentimentNeutral {
		t.Errorf("sentiment %s, want neutral", news["AAPL"].Sentiment)
	}
}

func TestLoadFixtures_MissingFile(t *testing.T) {
	_, _, err := LoadFixtures(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}
