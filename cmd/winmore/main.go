package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lostmonster84/winmore/internal/account"
	"github.com/lostmonster84/winmore/internal/collector"
	"github.com/lostmonster84/winmore/internal/config"
	"github.com/lostmonster84/winmore/internal/enrich"
	"github.com/lostmonster84/winmore/internal/notifier"
	"github.com/lostmonster84/winmore/internal/recorder"
	"github.com/lostmonster84/winmore/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] winmore starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init quote fetcher with an explicit TTL cache
	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	cache := collector.NewCache(time.Duration(cfg.MarketData.CacheTTLSecs)*time.Second, nil)
	quotes := collector.NewCachedFetcher(yahoo, cache)
	log.Printf("[INFO] quote source: %s (cache TTL %ds)", yahoo.Name(), cfg.MarketData.CacheTTLSecs)

	// Init broker fetcher (optional)
	var broker collector.PortfolioFetcher
	if cfg.Broker.BaseURL != "" {
		t212 := collector.NewTrading212Fetcher(cfg.Broker.BaseURL, cfg.Broker.APIKey, cfg.Proxy)
		broker = t212
		log.Printf("[INFO] broker source: %s", t212.Name())
	} else {
		log.Println("[INFO] no broker configured, balances come from account state only")
	}

	// Init technicals/news providers from the fixtures file
	var enricher *enrich.Enricher
	if cfg.MarketData.FixturesFile != "" {
		technicals, news, err := enrich.LoadFixtures(cfg.MarketData.FixturesFile)
		if err != nil {
			log.Fatalf("[FATAL] load fixtures: %v", err)
		}
		enricher = enrich.NewEnricher(technicals, news)
		log.Printf("[INFO] loaded technicals/news for %d symbols", len(technicals))
	} else {
		log.Println("[WARN] no fixtures file configured, scans will skip every stock")
		enricher = enrich.NewEnricher(enrich.StaticTechnicals{}, enrich.StaticNews{})
	}

	// Init account manager
	am, err := account.NewManager(cfg.Account.StateFile, cfg.Account.OpeningBalance, nil)
	if err != nil {
		log.Fatalf("[FATAL] init account manager: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, quotes, broker, enricher, am, tn, rec, cfg.MarketData.Watchlist)
	if err := sched.RegisterAll(cfg.Schedule.ScanCron, cfg.Schedule.DailyResetCron, cfg.Schedule.MonthlyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] winmore is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] winmore stopped")
}
