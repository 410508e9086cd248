package strategy

import (
	"context"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	strategyv1 "github.com/muhammadchandra19/marketsim/internal/domain/strategy/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
)

// MarketStateDepthLevels is the depth included in MarketState.
const MarketStateDepthLevels = 10

// OrderRecord is one entry of the strategy order history.
type OrderRecord struct {
	Timestamp time.Time                    `json:"timestamp"`
	Side      orderbookv1.Side             `json:"side"`
	Price     float64                      `json:"price"`
	Quantity  float64                      `json:"quantity"`
	Report    *orderbookv1.ExecutionReport `json:"report"`
}

// BaseStatistics summarizes the lifecycle and order flow of a strategy.
type BaseStatistics struct {
	Name         string `json:"name"`
	IsRunning    bool   `json:"isRunning"`
	NumFills     int    `json:"numFills"`
	ActiveOrders int    `json:"activeOrders"`
	TotalOrders  int    `json:"totalOrders"`
	NumTrades    int    `json:"numTrades"`
}

// Base carries the parts every strategy shares: lifecycle, order submission
// through the matching engine, active order tracking and history.
type Base struct {
	name   string
	engine orderbookv1.MatchingEngine
	logger *logger.Logger
	now    func() time.Time

	running      bool
	orders       map[string]*orderbookv1.Order // every order the strategy submitted
	activeOrders map[string]*orderbookv1.Order // orders still resting
	orderHistory []OrderRecord
	tradeHistory []orderbookv1.Trade
	numFills     int
}

// NewBase creates a stopped Base.
func NewBase(name string, engine orderbookv1.MatchingEngine, log *logger.Logger) *Base {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Base{
		name:         name,
		engine:       engine,
		logger:       log.WithFields(logger.Field{Key: "strategy", Value: name}),
		now:          time.Now,
		orders:       make(map[string]*orderbookv1.Order),
		activeOrders: make(map[string]*orderbookv1.Order),
	}
}

// Name returns the strategy name, also used as the owner id of its orders.
func (b *Base) Name() string {
	return b.name
}

// IsRunning reports whether the strategy is started.
func (b *Base) IsRunning() bool {
	return b.running
}

// Start moves the strategy from stopped to running.
func (b *Base) Start(ctx context.Context) error {
	if b.running {
		return errors.NewErrorDetails("strategy is already running", string(errors.ErrStrategyAlreadyRunning), "running")
	}
	b.running = true
	b.logger.InfoContext(ctx, "Strategy started")
	return nil
}

// Stop moves the strategy to stopped and cancels every outstanding order.
func (b *Base) Stop(ctx context.Context) error {
	if !b.running {
		return errors.NewErrorDetails("strategy is not running", string(errors.ErrStrategyNotRunning), "running")
	}
	b.running = false
	cancelled := b.CancelAllOrders(ctx)
	b.logger.InfoContext(ctx, "Strategy stopped", logger.Field{Key: "cancelledOrders", Value: cancelled})
	return nil
}

// SubmitOrder places a limit order owned by the strategy. Nothing is
// submitted while the strategy is stopped.
func (b *Base) SubmitOrder(ctx context.Context, side orderbookv1.Side, price, quantity float64) (*orderbookv1.ExecutionReport, error) {
	if !b.running {
		return nil, errors.NewErrorDetails("strategy is not running", string(errors.ErrStrategyNotRunning), "running")
	}

	order, err := orderbookv1.NewLimitOrder(b.name, side, price, quantity)
	if err != nil {
		return nil, err
	}
	report, err := b.engine.Submit(ctx, order)
	if err != nil {
		return nil, err
	}

	b.orders[order.ID] = order
	if report.Rested {
		b.activeOrders[order.ID] = order
	}
	b.orderHistory = append(b.orderHistory, OrderRecord{
		Timestamp: b.now(),
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Report:    report,
	})
	return report, nil
}

// CancelOrder cancels an active order. The order stops being tracked as
// active whenever it no longer rests, even if the cancel itself fails.
func (b *Base) CancelOrder(ctx context.Context, orderID string) bool {
	ok := b.engine.Cancel(ctx, orderID)
	if order, tracked := b.activeOrders[orderID]; tracked && (ok || !order.IsResting()) {
		delete(b.activeOrders, orderID)
	}
	return ok
}

// CancelAllOrders cancels every active order and returns how many were cancelled.
func (b *Base) CancelAllOrders(ctx context.Context) int {
	cancelled := 0
	for id := range b.activeOrders {
		if b.CancelOrder(ctx, id) {
			cancelled++
		}
	}
	return cancelled
}

// MarketState reads the current top of book with 10 levels of depth.
func (b *Base) MarketState() strategyv1.MarketSnapshot {
	return strategyv1.SnapshotFromBook(b.engine.Orderbook(), MarketStateDepthLevels, b.now())
}

// OwnOrder returns an order the strategy submitted.
func (b *Base) OwnOrder(orderID string) (*orderbookv1.Order, bool) {
	order, ok := b.orders[orderID]
	return order, ok
}

// ActiveOrders returns the ids of orders still resting.
func (b *Base) ActiveOrders() []string {
	ids := make([]string, 0, len(b.activeOrders))
	for id := range b.activeOrders {
		ids = append(ids, id)
	}
	return ids
}

// OrderHistory returns a copy of every submission.
func (b *Base) OrderHistory() []OrderRecord {
	return append([]OrderRecord(nil), b.orderHistory...)
}

// TradeHistory returns a copy of the trades the strategy took part in.
func (b *Base) TradeHistory() []orderbookv1.Trade {
	return append([]orderbookv1.Trade(nil), b.tradeHistory...)
}

// recordTrade appends a trade to the history and prunes orders it completed.
func (b *Base) recordTrade(trade orderbookv1.Trade) {
	b.tradeHistory = append(b.tradeHistory, trade)
	for _, id := range []string{trade.BuyOrderID, trade.SellOrderID} {
		if order, ok := b.activeOrders[id]; ok && !order.IsResting() {
			delete(b.activeOrders, id)
		}
	}
}

// recordFill counts an observed fill of an own order.
func (b *Base) recordFill() {
	b.numFills++
}

// Statistics returns the base counters.
func (b *Base) Statistics() BaseStatistics {
	return BaseStatistics{
		Name:         b.name,
		IsRunning:    b.running,
		NumFills:     b.numFills,
		ActiveOrders: len(b.activeOrders),
		TotalOrders:  len(b.orderHistory),
		NumTrades:    len(b.tradeHistory),
	}
}
