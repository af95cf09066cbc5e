package collector

import (
	"fmt"
	"time"

	"github.com/lostmonster84/winmore/internal/calculator"
	"github.com/lostmonster84/winmore/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes    map[string]model.Stock
	VIXValue  float64
	Portfolio model.Portfolio
	Calls     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(symbol string) (model.Stock, error) {
	m.Calls++
	s, ok := m.Quotes[symbol]
	if !ok {
		return model.Stock{}, fmt.Errorf("mock quote %s: %w", symbol, ErrNotFound)
	}
	return s, nil
}

func (m *MockFetcher) FetchVIX() (model.VIX, error) {
	return calculator.AssessVIX(m.VIXValue, time.Now()), nil
}

func (m *MockFetcher) FetchPortfolio() (model.Portfolio, error) {
	return m.Portfolio, nil
}
