package orderbookv1

import "context"

// Orderbook defines the single-instrument limit order book with price-time priority matching.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderbookv1_mock
type Orderbook interface {
	Symbol() string
	// Submit matches the order against the contra side and rests any LIMIT remainder.
	Submit(order *Order) ([]Trade, error)
	// Cancel removes a resting order. It returns false for unknown or terminal ids.
	Cancel(orderID string) bool
	Order(orderID string) (*Order, bool)

	BestBid() (float64, bool)
	BestAsk() (float64, bool)
	Spread() (float64, bool)
	MidPrice() (float64, bool)
	Depth(levels int) Depth
	Bids() []*Limit
	Asks() []*Limit

	Trades() []Trade
	TradesSince(cursor int) []Trade
	TradeCount() int
	TotalVolume() float64

	Validate() error
}

// MatchingEngine submits orders into an Orderbook and derives execution reports.
type MatchingEngine interface {
	Orderbook() Orderbook
	Submit(ctx context.Context, order *Order) (*ExecutionReport, error)
	SubmitLimitOrder(ctx context.Context, userID string, side Side, price, quantity float64) (*ExecutionReport, error)
	SubmitMarketOrder(ctx context.Context, userID string, side Side, quantity float64) (*ExecutionReport, error)
	Cancel(ctx context.Context, orderID string) bool
	EstimateImpact(side Side, quantity float64) (ImpactReport, error)
}
