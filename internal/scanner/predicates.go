package scanner

import (
	"math"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
	"github.com/lostmonster84/winmore/internal/setup"
)

// Quality floors every setup shares: no penny stocks, no small caps.
const (
	minPrice     = 10
	minMarketCap = 1_000_000_000
)

// Setup-specific thresholds.
const (
	oversoldRSI          = 40
	oversoldVolumeSpike  = 1.5
	supportVolumeSpike   = 1.3
	supportMATolerance   = 0.02 // within 2% of the MA
	earningsMinDrop      = -10
	earningsMinMarketCap = 5_000_000_000
	earningsWindowDays   = 2
	sympathyMinMarketCap = 2_000_000_000
	gapMinPercent        = 5
	gapSupportCushion    = 1.02 // above the day low by 2%
	gapWindowOpenHour    = 15   // Europe/London, early US session
	gapWindowCloseHour   = 17
)

// passesBasicCriteria is the gate every (stock, setup) pair must clear before
// the setup-specific predicate runs.
func passesBasicCriteria(s model.EnhancedStock, def setup.Setup) bool {
	if !def.Criteria.PriceChange.Contains(s.ChangePercent) {
		return false
	}
	if s.Price < minPrice {
		return false
	}
	if s.MarketCap < minMarketCap {
		return false
	}
	return true
}

// matchesOversoldBounce: RSI under 40, holding above the 200-day MA, clean
// news, volume confirmation, and a fear-driven 8-15% drop.
func matchesOversoldBounce(s model.EnhancedStock) bool {
	if s.Technicals.RSI >= oversoldRSI {
		return false
	}
	if s.Price <= s.Technicals.SMA200 {
		return false
	}
	if !s.News.Clean {
		return false
	}
	if s.Technicals.VolumeSpike < oversoldVolumeSpike {
		return false
	}
	if s.ChangePercent > -8 || s.ChangePercent < -15 {
		return false
	}
	return true
}

// matchesSupportBounce: sitting within 2% of the 50 or 200-day MA without
// having broken below either, with volume confirmation and clean news.
func matchesSupportBounce(s model.EnhancedStock) bool {
	if !s.News.Clean {
		return false
	}
	if s.Technicals.VolumeSpike < supportVolumeSpike {
		return false
	}
	near50 := math.Abs(s.Price-s.Technicals.SMA50)/s.Price < supportMATolerance
	near200 := math.Abs(s.Price-s.Technicals.SMA200)/s.Price < supportMATolerance
	if !near50 && !near200 {
		return false
	}
	if s.Price < s.Technicals.SMA50 || s.Price < s.Technicals.SMA200 {
		return false
	}
	return true
}

// matchesEarningsOverreaction: a quality company down hard within two days
// of reporting.
func matchesEarningsOverreaction(s model.EnhancedStock, now time.Time) bool {
	if !s.News.HasEarnings || s.News.EarningsDate.IsZero() {
		return false
	}
	daysSince := now.Sub(s.News.EarningsDate).Hours() / 24
	if daysSince < 0 || daysSince > earningsWindowDays {
		return false
	}
	if s.ChangePercent > earningsMinDrop {
		return false
	}
	if s.MarketCap < earningsMinMarketCap {
		return false
	}
	return true
}

// matchesSympathySelloff: moderate decline with no company-specific news.
func matchesSympathySelloff(s model.EnhancedStock) bool {
	if !s.News.Clean {
		return false
	}
	if s.ChangePercent > -5 || s.ChangePercent < -12 {
		return false
	}
	if s.MarketCap < sympathyMinMarketCap {
		return false
	}
	return true
}

// matchesGapFill: a 5%+ gap down on no news, holding above the day low, and
// only during the 15:00-17:00 UK window covering the early US session.
// ukHour is derived from the injected clock, never read internally.
func matchesGapFill(s model.EnhancedStock, ukHour int) bool {
	if math.Abs(s.Technicals.GapPercent) < gapMinPercent {
		return false
	}
	if s.Technicals.GapPercent > 0 {
		return false
	}
	if !s.News.Clean {
		return false
	}
	if s.Price < s.DayLow*gapSupportCushion {
		return false
	}
	if ukHour < gapWindowOpenHour || ukHour > gapWindowCloseHour {
		return false
	}
	return true
}
