package tradepublisherv1

import "context"

// TradePublisher defines the interface for publishing executed trades.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradepublisherv1_mock
type TradePublisher interface {
	// PublishTrades publishes trade events in ledger order.
	PublishTrades(ctx context.Context, events ...*TradeEvent) error
	Close() error
}
