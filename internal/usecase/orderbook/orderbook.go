package orderbook

import (
	"fmt"
	"sort"
	"sync"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
)

// Orderbook is a single-instrument limit order book with price-time priority.
// A submission or cancellation mutates levels, index and ledger as one unit under mu.
type Orderbook struct {
	mu     sync.RWMutex
	symbol string
	now    func() time.Time

	AskLimits map[float64]*orderbookv1.Limit // price -> limit
	BidLimits map[float64]*orderbookv1.Limit // price -> limit
	Orders    map[string]*orderbookv1.Order  // orderID -> resting order

	askPrices []float64 // ascending
	bidPrices []float64 // descending

	trades      []orderbookv1.Trade
	totalVolume float64
	sequence    int64
}

var _ orderbookv1.Orderbook = (*Orderbook)(nil)

// Option configures an Orderbook.
type Option func(*Orderbook)

// WithClock overrides the clock used to timestamp trades.
func WithClock(now func() time.Time) Option {
	return func(ob *Orderbook) {
		ob.now = now
	}
}

// NewOrderbook creates a new orderbook
func NewOrderbook(symbol string, opts ...Option) *Orderbook {
	ob := &Orderbook{
		symbol:    symbol,
		now:       time.Now,
		AskLimits: make(map[float64]*orderbookv1.Limit),
		BidLimits: make(map[float64]*orderbookv1.Limit),
		Orders:    make(map[string]*orderbookv1.Order),
	}
	for _, opt := range opts {
		opt(ob)
	}
	return ob
}

// Symbol returns the instrument the book trades.
func (ob *Orderbook) Symbol() string {
	return ob.symbol
}

// Submit matches the order against the resting contra side, best price first
// and FIFO within a price, then rests any LIMIT remainder. A MARKET remainder
// is discarded and the order is marked cancelled.
func (ob *Orderbook) Submit(order *orderbookv1.Order) ([]orderbookv1.Trade, error) {
	if order == nil {
		return nil, errors.NewErrorDetails("order cannot be nil", string(errors.GeneralBadRequestError), "order")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if order.Filled > 0 || order.Status() != orderbookv1.OrderStatusPending {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("order %s is %s", order.ID, order.Status()),
			string(errors.ErrOrderNotPending), "status")
	}
	if order.ID == "" {
		order.ID = orderbookv1.NewOrderID()
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	if _, exists := ob.Orders[order.ID]; exists {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("order with ID %s already exists", order.ID),
			string(errors.ErrDuplicateOrderID), "id")
	}

	ob.sequence++
	order.Sequence = ob.sequence

	trades := ob.match(order)

	if order.Remaining() > 0 {
		if order.IsMarket() {
			order.Cancel()
		} else {
			ob.rest(order)
		}
	}

	return trades, nil
}

// match walks the contra side in price priority while the order crosses.
func (ob *Orderbook) match(order *orderbookv1.Order) []orderbookv1.Trade {
	var trades []orderbookv1.Trade
	timestamp := ob.now().UnixNano()

	for order.Remaining() > 0 {
		limit, ok := ob.bestContra(order.Side)
		if !ok || !order.Crosses(limit.Price) {
			break
		}
		if limit.IsEmpty() {
			panic(errors.Invariant("empty price level %f resting on the %s side", limit.Price, order.Side.Opposite()))
		}

		levelTrades, filled := limit.Fill(order, timestamp)
		for _, resting := range filled {
			delete(ob.Orders, resting.ID)
		}
		if limit.IsEmpty() {
			ob.removeLimit(order.Side.Opposite(), limit.Price)
		}

		for _, trade := range levelTrades {
			ob.totalVolume += trade.Quantity
		}
		trades = append(trades, levelTrades...)
	}

	ob.trades = append(ob.trades, trades...)
	return trades
}

func (ob *Orderbook) bestContra(side orderbookv1.Side) (*orderbookv1.Limit, bool) {
	if side == orderbookv1.SideBuy {
		if len(ob.askPrices) == 0 {
			return nil, false
		}
		return ob.AskLimits[ob.askPrices[0]], true
	}
	if len(ob.bidPrices) == 0 {
		return nil, false
	}
	return ob.BidLimits[ob.bidPrices[0]], true
}

// rest adds the unfilled remainder of a limit order to its own side.
func (ob *Orderbook) rest(order *orderbookv1.Order) {
	limits := ob.limitsFor(order.Side)

	limit, exists := limits[order.Price]
	if !exists {
		limit = orderbookv1.NewLimit(order.Price)
		limits[order.Price] = limit
		ob.insertPrice(order.Side, order.Price)
	}

	if err := limit.AddOrder(order); err != nil {
		panic(errors.NewTracer(string(errors.ErrInvariantViolation)).Wrap(err))
	}
	ob.Orders[order.ID] = order
}

// Cancel removes a resting order. It returns false when the id is unknown or terminal.
func (ob *Orderbook) Cancel(orderID string) bool {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order, exists := ob.Orders[orderID]
	if !exists {
		return false
	}

	limit := order.Limit()
	if limit == nil {
		panic(errors.Invariant("indexed order %s is not resting in any level", orderID))
	}
	if err := limit.RemoveOrder(order); err != nil {
		panic(errors.NewTracer(string(errors.ErrInvariantViolation)).Wrap(err))
	}
	if limit.IsEmpty() {
		ob.removeLimit(order.Side, limit.Price)
	}

	order.Cancel()
	delete(ob.Orders, orderID)

	return true
}

// Order returns a resting order by id.
func (ob *Orderbook) Order(orderID string) (*orderbookv1.Order, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	order, ok := ob.Orders[orderID]
	return order, ok
}

// BestBid returns the highest bid price.
func (ob *Orderbook) BestBid() (float64, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	if len(ob.bidPrices) == 0 {
		return 0, false
	}
	return ob.bidPrices[0], true
}

// BestAsk returns the lowest ask price.
func (ob *Orderbook) BestAsk() (float64, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	if len(ob.askPrices) == 0 {
		return 0, false
	}
	return ob.askPrices[0], true
}

// Spread returns best ask minus best bid; undefined when either side is empty.
func (ob *Orderbook) Spread() (float64, bool) {
	bid, okBid := ob.BestBid()
	ask, okAsk := ob.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask - bid, true
}

// MidPrice returns the average of best bid and best ask.
func (ob *Orderbook) MidPrice() (float64, bool) {
	bid, okBid := ob.BestBid()
	ask, okAsk := ob.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return (bid + ask) / 2, true
}

// Depth returns up to levels aggregated price levels per side; all levels when levels <= 0.
func (ob *Orderbook) Depth(levels int) orderbookv1.Depth {
	return orderbookv1.Depth{
		Bids: orderbookv1.Limits(ob.Bids()).ToDepth(levels),
		Asks: orderbookv1.Limits(ob.Asks()).ToDepth(levels),
	}
}

// Asks returns ask limits sorted by price (ascending)
func (ob *Orderbook) Asks() []*orderbookv1.Limit {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	limits := make([]*orderbookv1.Limit, 0, len(ob.askPrices))
	for _, price := range ob.askPrices {
		limits = append(limits, ob.AskLimits[price])
	}
	return limits
}

// Bids returns bid limits sorted by price (descending)
func (ob *Orderbook) Bids() []*orderbookv1.Limit {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	limits := make([]*orderbookv1.Limit, 0, len(ob.bidPrices))
	for _, price := range ob.bidPrices {
		limits = append(limits, ob.BidLimits[price])
	}
	return limits
}

// AskTotalVolume returns total resting ask volume
func (ob *Orderbook) AskTotalVolume() float64 {
	return sumVolume(ob.Asks())
}

// BidTotalVolume returns total resting bid volume
func (ob *Orderbook) BidTotalVolume() float64 {
	return sumVolume(ob.Bids())
}

func sumVolume(limits []*orderbookv1.Limit) float64 {
	total := 0.0
	for _, limit := range limits {
		total += limit.GetTotalVolume()
	}
	return total
}

// Trades returns a copy of the trade ledger.
func (ob *Orderbook) Trades() []orderbookv1.Trade {
	return ob.TradesSince(0)
}

// TradesSince returns a copy of the ledger entries from index cursor onward.
func (ob *Orderbook) TradesSince(cursor int) []orderbookv1.Trade {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(ob.trades) {
		return nil
	}
	trades := make([]orderbookv1.Trade, len(ob.trades)-cursor)
	copy(trades, ob.trades[cursor:])
	return trades
}

// TradeCount returns the number of ledger entries.
func (ob *Orderbook) TradeCount() int {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return len(ob.trades)
}

// TotalVolume returns the cumulative traded quantity.
func (ob *Orderbook) TotalVolume() float64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()
	return ob.totalVolume
}

// Validate checks every structural invariant of the book. A non-nil result is a defect.
func (ob *Orderbook) Validate() error {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	indexed := 0
	for _, side := range []orderbookv1.Side{orderbookv1.SideBuy, orderbookv1.SideSell} {
		limits, prices := ob.limitsFor(side), ob.pricesFor(side)
		if len(limits) != len(prices) {
			return errors.Invariant("%s side has %d levels but %d sorted prices", side, len(limits), len(prices))
		}
		for i, price := range prices {
			if i > 0 && !ob.better(side, prices[i-1], price) {
				return errors.Invariant("%s prices out of priority order at %f", side, price)
			}
			limit, ok := limits[price]
			if !ok {
				return errors.Invariant("%s price %f has no level", side, price)
			}
			if limit.IsEmpty() {
				return errors.Invariant("%s level %f is empty", side, price)
			}
			if err := limit.Validate(); err != nil {
				return errors.NewTracer(string(errors.ErrInvariantViolation)).Wrap(err)
			}
			for _, order := range limit.GetOrders() {
				if order.Side != side {
					return errors.Invariant("order %s of side %s rests on the %s side", order.ID, order.Side, side)
				}
				if ob.Orders[order.ID] != order {
					return errors.Invariant("resting order %s missing from index", order.ID)
				}
				indexed++
			}
		}
	}
	if indexed != len(ob.Orders) {
		return errors.Invariant("index holds %d orders but %d rest in levels", len(ob.Orders), indexed)
	}

	if len(ob.bidPrices) > 0 && len(ob.askPrices) > 0 && ob.bidPrices[0] >= ob.askPrices[0] {
		return errors.Invariant("crossed book: best bid %f >= best ask %f", ob.bidPrices[0], ob.askPrices[0])
	}
	return nil
}

func (ob *Orderbook) limitsFor(side orderbookv1.Side) map[float64]*orderbookv1.Limit {
	if side == orderbookv1.SideBuy {
		return ob.BidLimits
	}
	return ob.AskLimits
}

func (ob *Orderbook) pricesFor(side orderbookv1.Side) []float64 {
	if side == orderbookv1.SideBuy {
		return ob.bidPrices
	}
	return ob.askPrices
}

// better reports whether price a has priority over price b on side.
func (ob *Orderbook) better(side orderbookv1.Side, a, b float64) bool {
	if side == orderbookv1.SideBuy {
		return a > b
	}
	return a < b
}

func (ob *Orderbook) search(side orderbookv1.Side, price float64) int {
	prices := ob.pricesFor(side)
	return sort.Search(len(prices), func(i int) bool {
		return !ob.better(side, prices[i], price)
	})
}

func (ob *Orderbook) insertPrice(side orderbookv1.Side, price float64) {
	i := ob.search(side, price)
	prices := append(ob.pricesFor(side), 0)
	copy(prices[i+1:], prices[i:])
	prices[i] = price
	ob.setPrices(side, prices)
}

func (ob *Orderbook) removeLimit(side orderbookv1.Side, price float64) {
	delete(ob.limitsFor(side), price)

	prices := ob.pricesFor(side)
	i := ob.search(side, price)
	if i >= len(prices) || prices[i] != price {
		panic(errors.Invariant("%s price %f missing from sorted prices", side, price))
	}
	ob.setPrices(side, append(prices[:i], prices[i+1:]...))
}

func (ob *Orderbook) setPrices(side orderbookv1.Side, prices []float64) {
	if side == orderbookv1.SideBuy {
		ob.bidPrices = prices
		return
	}
	ob.askPrices = prices
}
