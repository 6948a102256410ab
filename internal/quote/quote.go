// Package quote turns a ticker symbol into a natural-language price answer.
package quote

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one trading day of history for a symbol.
type Bar struct {
	Close decimal.Decimal
	Time  time.Time
}

// HistoryProvider fetches recent daily bars for a symbol, newest last.
type HistoryProvider interface {
	DailyHistory(ctx context.Context, symbol string) ([]Bar, error)
}

// Fetcher formats the latest close of a symbol as a sentence. It never
// returns an error: provider failures are logged and degrade to a fixed
// apology naming the symbol, so callers always have text to show the user.
type Fetcher struct {
	provider HistoryProvider
}

func NewFetcher(p HistoryProvider) *Fetcher {
	return &Fetcher{provider: p}
}

// Answer returns the price sentence for symbol. The price keeps whatever
// precision the provider reported; no rounding is applied.
func (f *Fetcher) Answer(ctx context.Context, symbol string) string {
	bars, err := f.provider.DailyHistory(ctx, symbol)
	if err != nil {
		log.Printf("quote: fetching %s: %v", symbol, err)
		return fmt.Sprintf("An error occurred while fetching data for %s.", symbol)
	}
	if len(bars) == 0 {
		return fmt.Sprintf("Sorry, I couldn't fetch the price for %s right now.", symbol)
	}
	last := bars[len(bars)-1]
	return fmt.Sprintf("The current (last close) price of %s is %s THB.", symbol, last.Close.String())
}
