// Package enrich joins raw stock quotes with caller-supplied technical and
// news data. The engine never generates either internally: both come in
// through provider interfaces so evaluation stays deterministic.
package enrich

import (
	"fmt"
	"log"

	"github.com/lostmonster84/winmore/internal/model"
)

// TechnicalsProvider supplies the technical indicators for a stock.
type TechnicalsProvider interface {
	Technicals(stock model.Stock) (model.TechnicalIndicators, error)
}

// NewsProvider supplies the news verdict for a stock.
type NewsProvider interface {
	News(stock model.Stock) (model.NewsAnalysis, error)
}

// StaticTechnicals is a symbol-keyed fixture provider.
type StaticTechnicals map[string]model.TechnicalIndicators

func (p StaticTechnicals) Technicals(stock model.Stock) (model.TechnicalIndicators, error) {
	t, ok := p[stock.Symbol]
	if !ok {
		return model.TechnicalIndicators{}, fmt.Errorf("no technicals for %s", stock.Symbol)
	}
	return t, nil
}

// StaticNews is a symbol-keyed fixture provider.
type StaticNews map[string]model.NewsAnalysis

func (p StaticNews) News(stock model.Stock) (model.NewsAnalysis, error) {
	n, ok := p[stock.Symbol]
	if !ok {
		return model.NewsAnalysis{}, fmt.Errorf("no news analysis for %s", stock.Symbol)
	}
	return n, nil
}

// Enricher builds EnhancedStock records from quotes plus providers.
type Enricher struct {
	Technicals TechnicalsProvider
	News       NewsProvider
}

// NewEnricher creates an Enricher.
func NewEnricher(technicals TechnicalsProvider, news NewsProvider) *Enricher {
	return &Enricher{Technicals: technicals, News: news}
}

// Enrich joins each stock with its technicals and news. Malformed stocks and
// stocks a provider cannot serve are skipped with a warning; one bad record
// never aborts the batch.
func (e *Enricher) Enrich(stocks []model.Stock) []model.EnhancedStock {
	enhanced := make([]model.EnhancedStock, 0, len(stocks))
	for _, stock := range stocks {
		if stock.Symbol == "" || stock.Price <= 0 {
			log.Printf("[WARN] skipping malformed stock record %q", stock.Symbol)
			continue
		}
		technicals, err := e.Technicals.Technicals(stock)
		if err != nil {
			log.Printf("[WARN] skipping %s: %v", stock.Symbol, err)
			continue
		}
		news, err := e.News.News(stock)
		if err != nil {
			log.Printf("[WARN] skipping %s: %v", stock.Symbol, err)
			continue
		}
		enhanced = append(enhanced, model.EnhancedStock{
			Stock:      stock,
			Technicals: technicals,
			News:       news,
		})
	}
	return enhanced
}
