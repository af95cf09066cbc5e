package collector

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lostmonster84/winmore/internal/calculator"
	"github.com/lostmonster84/winmore/internal/model"
)

// vixSymbol is the Yahoo ticker for the CBOE volatility index.
const vixSymbol = "^VIX"

// YahooFetcher implements QuoteFetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// FetchQuote fetches the current quote snapshot for a symbol.
func (f *YahooFetcher) FetchQuote(symbol string) (model.Stock, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d",
		url.PathEscape(symbol))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return model.Stock{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Stock{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Stock{}, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return model.Stock{}, fmt.Errorf("yahoo quote %s: %w", symbol, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Stock{}, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	if apiErr := gjson.GetBytes(body, "chart.error.description"); apiErr.Exists() && apiErr.String() != "" {
		return model.Stock{}, fmt.Errorf("yahoo api error: %s", apiErr.String())
	}
	meta := gjson.GetBytes(body, "chart.result.0.meta")
	if !meta.Exists() {
		return model.Stock{}, fmt.Errorf("yahoo quote %s: %w", symbol, ErrNotFound)
	}

	price := meta.Get("regularMarketPrice").Float()
	prevClose := meta.Get("chartPreviousClose").Float()
	if v := meta.Get("previousClose"); v.Exists() {
		prevClose = v.Float()
	}
	change := price - prevClose
	changePct := 0.0
	if prevClose != 0 {
		changePct = change / prevClose * 100
	}

	ts := time.Now()
	if v := meta.Get("regularMarketTime"); v.Exists() && v.Int() > 0 {
		ts = time.Unix(v.Int(), 0)
	}

	return model.Stock{
		Symbol:        symbol,
		Name:          meta.Get("longName").String(),
		Price:         price,
		PreviousClose: prevClose,
		Change:        change,
		ChangePercent: changePct,
		Volume:        meta.Get("regularMarketVolume").Float(),
		AvgVolume:     meta.Get("averageDailyVolume3Month").Float(),
		MarketCap:     meta.Get("marketCap").Float(),
		High52Week:    meta.Get("fiftyTwoWeekHigh").Float(),
		Low52Week:     meta.Get("fiftyTwoWeekLow").Float(),
		DayHigh:       meta.Get("regularMarketDayHigh").Float(),
		DayLow:        meta.Get("regularMarketDayLow").Float(),
		LastUpdated:   ts,
	}, nil
}

// FetchVIX fetches the volatility index and grades it on the Win More scale.
func (f *YahooFetcher) FetchVIX() (model.VIX, error) {
	quote, err := f.FetchQuote(vixSymbol)
	if err != nil {
		return model.VIX{}, fmt.Errorf("fetch VIX: %w", err)
	}
	return calculator.AssessVIX(quote.Price, quote.LastUpdated), nil
}
