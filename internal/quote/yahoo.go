package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// YahooProvider reads daily bars from Yahoo Finance. SET listings are
// addressed with their ".BK" suffix, which the extractor already appends.
type YahooProvider struct {
	// windowDays is how far back to ask for bars. A few days, not one,
	// so the last trading day is still covered across weekends and Thai
	// market holidays.
	windowDays int
}

func NewYahooProvider() *YahooProvider {
	return &YahooProvider{windowDays: 7}
}

// DailyHistory fetches up to windowDays of daily bars ending now.
// finance-go does not accept a context; cancellation is bounded by its
// internal HTTP client.
func (p *YahooProvider) DailyHistory(_ context.Context, symbol string) ([]Bar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -p.windowDays)

	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var bars []Bar
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, Bar{
			Close: b.Close,
			Time:  time.Unix(int64(b.Timestamp), 0),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart for %s: %w", symbol, err)
	}
	return bars, nil
}
