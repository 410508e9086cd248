package strategyv1

import (
	"context"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
)

// Strategy reacts to market updates, trades and fills of its own orders.
// Drivers depend on this interface only.
type Strategy interface {
	Name() string
	IsRunning() bool
	Start(ctx context.Context) error
	// Stop cancels every outstanding order of the strategy.
	Stop(ctx context.Context) error

	OnMarketUpdate(ctx context.Context, snapshot MarketSnapshot) error
	// OnTrade is called for ledger trades naming the strategy as buyer or seller.
	OnTrade(ctx context.Context, trade orderbookv1.Trade) error
	OnOrderFilled(ctx context.Context, order *orderbookv1.Order, fillPrice, fillQuantity float64)
}
