package strategyv1

import (
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
)

// MarketSnapshot is the top-of-book view handed to a strategy on every update.
// Prices are zero when the corresponding Has flag is false.
type MarketSnapshot struct {
	Timestamp time.Time         `json:"timestamp"`
	BestBid   float64           `json:"bestBid"`
	BestAsk   float64           `json:"bestAsk"`
	MidPrice  float64           `json:"midPrice"`
	Spread    float64           `json:"spread"`
	HasBid    bool              `json:"hasBid"`
	HasAsk    bool              `json:"hasAsk"`
	Depth     orderbookv1.Depth `json:"depth"`
}

// HasMid reports whether both sides are present.
func (s MarketSnapshot) HasMid() bool {
	return s.HasBid && s.HasAsk
}

// SnapshotFromBook reads the top of book and levels of depth.
func SnapshotFromBook(book orderbookv1.Orderbook, levels int, now time.Time) MarketSnapshot {
	snapshot := MarketSnapshot{
		Timestamp: now,
		Depth:     book.Depth(levels),
	}
	snapshot.BestBid, snapshot.HasBid = book.BestBid()
	snapshot.BestAsk, snapshot.HasAsk = book.BestAsk()
	if snapshot.HasMid() {
		snapshot.MidPrice = (snapshot.BestBid + snapshot.BestAsk) / 2
		snapshot.Spread = snapshot.BestAsk - snapshot.BestBid
	}
	return snapshot
}
