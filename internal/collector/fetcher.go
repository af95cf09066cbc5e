// Package collector fetches quotes, VIX readings, and broker portfolio data
// from upstream sources. Everything downstream consumes already-resolved
// snapshots; retry and caching live here, never in the evaluation path.
package collector

import (
	"errors"

	"github.com/lostmonster84/winmore/internal/model"
)

// ErrNotFound is returned when a symbol does not exist upstream.
var ErrNotFound = errors.New("symbol not found")

// QuoteFetcher fetches market quotes and the VIX level.
type QuoteFetcher interface {
	FetchQuote(symbol string) (model.Stock, error)
	FetchVIX() (model.VIX, error)
	Name() string
}

// PortfolioFetcher fetches the broker account snapshot.
type PortfolioFetcher interface {
	FetchPortfolio() (model.Portfolio, error)
	Name() string
}
