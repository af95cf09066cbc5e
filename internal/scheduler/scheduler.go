// Package scheduler runs the cron-driven jobs: scheduled setup scans, the
// daily trade-count reset at UK midnight, and the monthly allocation
// rollover. It also serves the Telegram command surface.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/lostmonster84/winmore/internal/account"
	"github.com/lostmonster84/winmore/internal/collector"
	"github.com/lostmonster84/winmore/internal/enrich"
	"github.com/lostmonster84/winmore/internal/model"
	"github.com/lostmonster84/winmore/internal/notifier"
	"github.com/lostmonster84/winmore/internal/recorder"
	"github.com/lostmonster84/winmore/internal/rules"
	"github.com/lostmonster84/winmore/internal/scanner"
)

var london *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.FixedZone("BST", 3600)
	}
	london = loc
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Quotes    collector.QuoteFetcher
	Broker    collector.PortfolioFetcher // may be nil
	Enricher  *enrich.Enricher
	Account   *account.Manager
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Cron expressions run on UK time so
// the daily reset lands on the same midnight the trade counter uses.
func NewScheduler(ctx context.Context, quotes collector.QuoteFetcher, broker collector.PortfolioFetcher,
	enricher *enrich.Enricher, am *account.Manager, tn *notifier.TelegramNotifier,
	rec recorder.Recorder, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds(), cron.WithLocation(london)),
		Quotes:    quotes,
		Broker:    broker,
		Enricher:  enricher,
		Account:   am,
		Notifier:  tn,
		Recorder:  rec,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// RegisterAll registers the scan, daily-reset, and monthly tasks.
func (s *Scheduler) RegisterAll(scanCron, dailyResetCron, monthlyCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	if _, err := s.Cron.AddFunc(dailyResetCron, func() {
		s.Account.ResetDailyCount()
		log.Println("[INFO] daily trade counter reset")
	}); err != nil {
		return fmt.Errorf("register daily reset: %w", err)
	}
	if _, err := s.Cron.AddFunc(monthlyCron, s.monthlyTask); err != nil {
		return fmt.Errorf("register monthly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// refreshBalances pulls the broker portfolio into the account state.
func (s *Scheduler) refreshBalances() {
	if s.Broker == nil {
		return
	}
	p, err := s.Broker.FetchPortfolio()
	if err != nil {
		log.Printf("[WARN] portfolio refresh failed, keeping last known balances: %v", err)
		return
	}
	s.Account.SetBalances(p.Cash+p.InvestedValue, p.InvestedValue)
}

// collectStocks fetches the watchlist quotes and joins them with the
// injected technicals and news providers.
func (s *Scheduler) collectStocks() []model.EnhancedStock {
	stocks := make([]model.Stock, 0, len(s.Watchlist))
	for _, symbol := range s.Watchlist {
		quote, err := s.Quotes.FetchQuote(symbol)
		if err != nil {
			log.Printf("[WARN] fetch quote %s: %v", symbol, err)
			continue
		}
		stocks = append(stocks, quote)
	}
	return s.Enricher.Enrich(stocks)
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running setup scan")
	s.refreshBalances()

	var vix *model.VIX
	if v, err := s.Quotes.FetchVIX(); err != nil {
		log.Printf("[WARN] fetch VIX failed, scoring with default level: %v", err)
	} else {
		vix = &v
	}

	enhanced := s.collectStocks()
	focus := s.Account.Focus()
	sc := scanner.New(vix, nil)
	candidates := sc.ScanForSetup(focus, enhanced)

	vixLevel := scanner.DefaultVIXLevel
	if vix != nil {
		vixLevel = vix.Value
	}
	if err := s.Recorder.RecordScan(&recorder.ScanSnapshot{
		SetupType:     focus,
		StocksScanned: len(enhanced),
		VIXLevel:      vixLevel,
		Candidates:    candidates,
	}); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}

	s.trySend(notifier.FormatScanReport(focus, candidates, vix))
}

func (s *Scheduler) monthlyTask() {
	log.Println("[INFO] running monthly rollover")
	s.refreshBalances()

	a := s.Account.Account()
	s.trySend(notifier.FormatMonthlyRollover(a.CurrentMonth, a.CurrentBalance))

	if err := s.Recorder.RecordAccount(&recorder.AccountSnapshot{
		Account: a,
		Focus:   s.Account.Focus(),
	}); err != nil {
		log.Printf("[ERROR] record account snapshot: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return s.help()
	}

	switch fields[0] {
	case "/scan":
		s.scanTask()
		return ""
	case "/account":
		s.refreshBalances()
		return notifier.FormatAccountStatus(s.Account.Account(), s.Account.Focus(), s.Account.TradesToday())
	case "/focus":
		if len(fields) != 2 {
			return fmt.Sprintf("Current focus: %s. Use /focus <1-5> to change.", s.Account.Focus())
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || !model.SetupType(n).Valid() {
			return "Setup must be a number from 1 to 5."
		}
		s.Account.SetFocus(model.SetupType(n))
		return fmt.Sprintf("Monthly focus set to %s.", model.SetupType(n))
	case "/vix":
		v, err := s.Quotes.FetchVIX()
		if err != nil {
			return fmt.Sprintf("VIX fetch failed: %v", err)
		}
		return fmt.Sprintf("VIX %.2f — %s\n%s\nSizing: %s", v.Value, v.Level, v.Interpretation, v.SizeGuidance)
	case "/check":
		return s.checkTrade(fields[1:])
	default:
		return s.help()
	}
}

// checkTrade runs the rule engine against a proposed trade:
// /check <symbol> <size> <setup>
func (s *Scheduler) checkTrade(args []string) string {
	if len(args) != 3 {
		return "Usage: /check <symbol> <position size> <setup 1-5>"
	}
	symbol := strings.ToUpper(args[0])
	size, err := strconv.ParseFloat(args[1], 64)
	if err != nil || size <= 0 {
		return "Position size must be a positive number."
	}
	n, err := strconv.Atoi(args[2])
	if err != nil || !model.SetupType(n).Valid() {
		return "Setup must be a number from 1 to 5."
	}

	s.refreshBalances()
	state := s.Account.State()
	tradesToday := s.Account.TradesToday()

	v := rules.ValidateTrade(rules.TradeParams{
		AccountBalance:      state.Balance,
		PositionSize:        size,
		TradesExecutedToday: tradesToday,
		CurrentInvestment:   state.Invested,
		Month:               time.Now().In(london).Month(),
		TradeSetup:          model.SetupType(n),
		MonthlyFocus:        state.SetupFocus,
	})

	if err := s.Recorder.RecordTradeCheck(&recorder.TradeCheck{
		ID:           uuid.NewString(),
		Symbol:       symbol,
		SetupType:    model.SetupType(n),
		PositionSize: size,
		Valid:        v.Valid,
		Errors:       v.Errors,
		Balance:      state.Balance,
		Invested:     state.Invested,
		TradesToday:  tradesToday,
	}); err != nil {
		log.Printf("[ERROR] record trade check: %v", err)
	}

	return notifier.FormatTradeValidation(symbol, size, v)
}

func (s *Scheduler) help() string {
	return "Commands:\n" +
		"• /scan — scan the watchlist for the focus setup\n" +
		"• /account — account and allocation status\n" +
		"• /focus <1-5> — set the monthly setup focus\n" +
		"• /vix — current VIX assessment\n" +
		"• /check <symbol> <size> <setup> — validate a trade against the rules"
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
