package enrich

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lostmonster84/winmore/internal/model"
)

// fixtureEntry is the YAML shape for one symbol's injected data.
type fixtureEntry struct {
	RSI         float64 `yaml:"rsi"`
	SMA20       float64 `yaml:"sma20"`
	SMA50       float64 `yaml:"sma50"`
	SMA200      float64 `yaml:"sma200"`
	VolumeSpike float64 `yaml:"volume_spike"`
	GapPercent  float64 `yaml:"gap_percent"`
	NewsClean   bool    `yaml:"news_clean"`
	Sentiment   string  `yaml:"sentiment"`
	HasEarnings bool    `yaml:"has_earnings"`
	EarningsAgo int     `yaml:"earnings_days_ago"` // used only when has_earnings
}

// LoadFixtures reads per-symbol technicals and news from a YAML file.
// The file is the deterministic stand-in for real indicator and news feeds.
func LoadFixtures(path string) (StaticTechnicals, StaticNews, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixtures: %w", err)
	}
	var entries map[string]fixtureEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parse fixtures: %w", err)
	}

	technicals := make(StaticTechnicals, len(entries))
	news := make(StaticNews, len(entries))
	now := time.Now()
	for symbol, e := range entries {
		technicals[symbol] = model.TechnicalIndicators{
			RSI:         e.RSI,
			SMA20:       e.SMA20,
			SMA50:       e.SMA50,
			SMA200:      e.SMA200,
			VolumeSpike: e.VolumeSpike,
			GapPercent:  e.GapPercent,
		}
		n := model.NewsAnalysis{
			Clean:       e.NewsClean,
			Sentiment:   model.Sentiment(e.Sentiment),
			HasEarnings: e.HasEarnings,
			LastChecked: now,
		}
		if n.Sentiment == "" {
			n.Sentiment = model.SentimentNeutral
		}
		if e.HasEarnings {
			n.EarningsDate = now.AddDate(0, 0, -e.EarningsAgo)
		}
		news[symbol] = n
	}
	return technicals, news, nil
}
