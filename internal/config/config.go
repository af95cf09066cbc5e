package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	MarketData struct {
		Watchlist    []string `yaml:"watchlist"`
		CacheTTLSecs int      `yaml:"cache_ttl_seconds"`
		FixturesFile string   `yaml:"fixtures_file"`
	} `yaml:"market_data"`
	Broker struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"broker"`
	Account struct {
		OpeningBalance float64 `yaml:"opening_balance"`
		StateFile      string  `yaml:"state_file"`
	} `yaml:"account"`
	Schedule struct {
		ScanCron       string `yaml:"scan_cron"`
		DailyResetCron string `yaml:"daily_reset_cron"`
		MonthlyCron    string `yaml:"monthly_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TRADING212_BASE_URL"); v != "" {
		cfg.Broker.BaseURL = v
	}
	if v := os.Getenv("TRADING212_API_KEY"); v != "" {
		cfg.Broker.APIKey = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.MarketData.Watchlist = strings.Split(v, ",")
	}
	if v := os.Getenv("OPENING_BALANCE"); v != "" {
		var balance float64
		if _, err := fmt.Sscanf(v, "%f", &balance); err == nil {
			cfg.Account.OpeningBalance = balance
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if len(cfg.MarketData.Watchlist) == 0 {
		cfg.MarketData.Watchlist = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA"}
	}
	if cfg.MarketData.CacheTTLSecs == 0 {
		cfg.MarketData.CacheTTLSecs = 30
	}
	if cfg.Schedule.ScanCron == "" {
		// 15:05 UK on weekdays, just inside the early US session.
		cfg.Schedule.ScanCron = "0 5 15 * * 1-5"
	}
	if cfg.Schedule.DailyResetCron == "" {
		cfg.Schedule.DailyResetCron = "0 0 0 * * *"
	}
	if cfg.Schedule.MonthlyCron == "" {
		cfg.Schedule.MonthlyCron = "0 0 8 1 * *"
	}
	if cfg.Account.OpeningBalance == 0 {
		cfg.Account.OpeningBalance = 10000
	}
	if cfg.Account.StateFile == "" {
		cfg.Account.StateFile = "data/account_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/winmore.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Account.OpeningBalance <= 0 {
		return fmt.Errorf("account.opening_balance must be positive")
	}
	if c.Broker.BaseURL != "" && c.Broker.APIKey == "" {
		return fmt.Errorf("broker.api_key is required when broker.base_url is set")
	}
	return nil
}
