package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

// Trading212Fetcher implements PortfolioFetcher against the Trading 212
// read-only equity API.
type Trading212Fetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewTrading212Fetcher creates a fetcher with optional proxy support.
func NewTrading212Fetcher(baseURL, apiKey, proxyURL string) *Trading212Fetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Trading212Fetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (f *Trading212Fetcher) Name() string { return "trading212" }

// t212Cash is the /equity/account/cash response shape.
type t212Cash struct {
	Free     float64 `json:"free"`
	Invested float64 `json:"invested"`
	Total    float64 `json:"total"`
	PPL      float64 `json:"ppl"`
}

// t212Position is one entry of the /equity/portfolio response.
type t212Position struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
}

func (f *Trading212Fetcher) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", f.BaseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", f.APIKey)

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("trading212 fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("trading212 %s: rate limited", endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("trading212 %s: status %d, body: %s", endpoint, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("trading212 decode %s: %w", endpoint, err)
	}
	return nil
}

// FetchPortfolio fetches cash plus open positions in two calls.
func (f *Trading212Fetcher) FetchPortfolio() (model.Portfolio, error) {
	var cash t212Cash
	if err := f.get("/equity/account/cash", &cash); err != nil {
		return model.Portfolio{}, err
	}

	var positions []t212Position
	if err := f.get("/equity/portfolio", &positions); err != nil {
		return model.Portfolio{}, err
	}

	p := model.Portfolio{
		Cash:          cash.Free,
		InvestedValue: cash.Invested,
		Positions:     make([]model.Position, 0, len(positions)),
		FetchedAt:     time.Now(),
	}
	for _, pos := range positions {
		p.Positions = append(p.Positions, model.Position{
			Symbol:       pos.Ticker,
			Quantity:     pos.Quantity,
			AveragePrice: pos.AveragePrice,
			CurrentPrice: pos.CurrentPrice,
		})
	}
	return p, nil
}
