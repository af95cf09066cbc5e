package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lostmonster84/winmore/internal/calculator"
	"github.com/lostmonster84/winmore/internal/model"
	"github.com/lostmonster84/winmore/internal/rules"
	"github.com/lostmonster84/winmore/internal/setup"
)

func pounds(v float64) string {
	return "£" + humanize.CommafWithDigits(v, 2)
}

// FormatScanReport formats a setup scan result into a Telegram message.
func FormatScanReport(t model.SetupType, candidates []model.SetupCandidate, vix *model.VIX) string {
	def := setup.MustSetup(t)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔍 <b>%s scan</b> | %s\n", def.Name, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Target win rate: %.0f%% | Stop %.0f%% | Target +%.1f%%\n", def.TargetWinRate, def.StopLoss, def.ProfitTarget))
	if vix != nil {
		b.WriteString(fmt.Sprintf("VIX %.1f (%s): %s\n", vix.Value, vix.Level, vix.SizeGuidance))
	}
	b.WriteString("\n")

	if len(candidates) == 0 {
		b.WriteString("No candidates passed the gates today.\n")
		return b.String()
	}

	for i, c := range candidates {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> — conviction %d/10 (%s)\n", i+1, c.Symbol, c.ConvictionScore, c.Recommendation))
		b.WriteString(fmt.Sprintf("   Entry %s | Stop %s | Target %s\n", pounds(c.RecommendedEntry), pounds(c.CalculatedStop), pounds(c.CalculatedTarget)))
		b.WriteString(fmt.Sprintf("   RSI %.0f | Vol %.1fx | News clean: %v\n", c.RSI, c.VolumeVsAverage, c.NewsClean))
	}
	return b.String()
}

// FormatAccountStatus formats the account view for display.
func FormatAccountStatus(a model.Account, focus model.SetupType, tradesToday int) string {
	var b strings.Builder
	b.WriteString("📦 <b>Win More account</b>\n\n")
	b.WriteString(fmt.Sprintf("Balance: %s\n", pounds(a.CurrentBalance)))
	b.WriteString(fmt.Sprintf("Standard position (5%%): %s\n", pounds(a.StandardPositionSize)))
	b.WriteString(fmt.Sprintf("Exceptional position (10%%): %s\n", pounds(a.ExceptionalPositionSize)))
	b.WriteString(fmt.Sprintf("\n%s limit (%s): %s\n", a.CurrentMonth, setup.MonthCharacter(a.CurrentMonth), pounds(a.MonthlyAllocationLimit)))
	b.WriteString(fmt.Sprintf("Invested: %s (%.1f%%)\n", pounds(a.CurrentlyInvested), a.CurrentlyInvestedPct))
	b.WriteString(fmt.Sprintf("Available to deploy: %s\n", pounds(a.AvailableToDeploy)))
	b.WriteString(fmt.Sprintf("\nFocus: %s\n", focus))
	b.WriteString(fmt.Sprintf("Trades today: %d/%d\n", tradesToday, calculator.MaxTradesPerDay))
	if a.TotalTrades > 0 {
		b.WriteString(fmt.Sprintf("Win rate: %.1f%% (%d/%d)\n", a.CurrentWinRate, a.WinningTrades, a.TotalTrades))
	}
	b.WriteString(fmt.Sprintf("Updated: %s\n", a.LastUpdated.Format("2006-01-02 15:04")))
	return b.String()
}

// FormatTradeValidation formats a rule-engine decision with every blocking
// reason.
func FormatTradeValidation(symbol string, size float64, v rules.TradeValidation) string {
	var b strings.Builder
	if v.Valid {
		b.WriteString(fmt.Sprintf("✅ <b>Trade allowed</b>: %s at %s\n", symbol, pounds(size)))
		b.WriteString("All four rules passed.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("🚫 <b>Trade blocked</b>: %s at %s\n\n", symbol, pounds(size)))
	for _, e := range v.Errors {
		b.WriteString(fmt.Sprintf("• %s\n", e))
	}
	return b.String()
}

// FormatMonthlyRollover announces the new month's allocation regime.
func FormatMonthlyRollover(month time.Month, balance float64) string {
	limit := calculator.CurrentLimit(balance, month)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>%s</b>\n\n", month))
	b.WriteString(fmt.Sprintf("%s\n", limit.Character))
	b.WriteString(fmt.Sprintf("Allocation limit: %.0f%% (%s)\n", limit.Percent, pounds(limit.Amount)))
	b.WriteString("\nPick this month's setup focus with /focus <1-5>.")
	return b.String()
}
