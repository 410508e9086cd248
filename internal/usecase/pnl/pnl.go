package pnl

import (
	"math"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
)

// TradeRecord is an immutable accounting entry for one fill.
type TradeRecord struct {
	Timestamp time.Time        `json:"timestamp"`
	Side      orderbookv1.Side `json:"side"`
	Price     float64          `json:"price"`
	Quantity  float64          `json:"quantity"`
	// Amount is cost including fee for a buy and proceeds net of fee for a sell.
	Amount    float64 `json:"amount"`
	Fee       float64 `json:"fee"`
	Cash      float64 `json:"cash"`
	Inventory float64 `json:"inventory"`
}

// Snapshot is the result of marking the position at a price.
type Snapshot struct {
	Timestamp      time.Time `json:"timestamp"`
	CurrentPrice   float64   `json:"currentPrice"`
	Cash           float64   `json:"cash"`
	Inventory      float64   `json:"inventory"`
	PortfolioValue float64   `json:"portfolioValue"`
	TotalPnL       float64   `json:"totalPnL"`
	RealizedPnL    float64   `json:"realizedPnL"`
	UnrealizedPnL  float64   `json:"unrealizedPnL"`
}

// Statistics aggregates the tracker state at a price.
type Statistics struct {
	Snapshot
	TotalReturnPct  float64 `json:"totalReturnPct"`
	NumTrades       int     `json:"numTrades"`
	NumBuys         int     `json:"numBuys"`
	NumSells        int     `json:"numSells"`
	TotalBuyVolume  float64 `json:"totalBuyVolume"`
	TotalSellVolume float64 `json:"totalSellVolume"`
	TotalFees       float64 `json:"totalFees"`
	WinRatePct      float64 `json:"winRatePct"`
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to timestamp records.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// Tracker converts fills into cash, inventory and PnL.
//
// Unrealized PnL uses the volume-weighted average of every buy recorded so
// far as cost basis, not lot matching. Realized PnL is the remainder of total.
type Tracker struct {
	now func() time.Time

	initialCash      float64
	initialInventory float64

	cash      float64
	inventory float64

	buyNotional     float64
	totalBuyVolume  float64
	totalSellVolume float64
	totalFees       float64
	numBuys         int
	numSells        int

	trades  []TradeRecord
	history []Snapshot
}

// NewTracker creates a Tracker with the starting cash and inventory.
func NewTracker(initialCash, initialInventory float64, opts ...Option) *Tracker {
	t := &Tracker{
		now:              time.Now,
		initialCash:      initialCash,
		initialInventory: initialInventory,
		cash:             initialCash,
		inventory:        initialInventory,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RecordBuy debits price*quantity+fee and adds quantity to inventory.
func (t *Tracker) RecordBuy(price, quantity, fee float64) error {
	if err := validateFill(price, quantity, fee); err != nil {
		return err
	}

	cost := price*quantity + fee
	t.cash -= cost
	t.inventory += quantity

	t.buyNotional += price * quantity
	t.totalBuyVolume += quantity
	t.totalFees += fee
	t.numBuys++

	t.append(orderbookv1.SideBuy, price, quantity, cost, fee)
	return nil
}

// RecordSell credits price*quantity-fee and removes quantity from inventory.
func (t *Tracker) RecordSell(price, quantity, fee float64) error {
	if err := validateFill(price, quantity, fee); err != nil {
		return err
	}

	proceeds := price*quantity - fee
	t.cash += proceeds
	t.inventory -= quantity

	t.totalSellVolume += quantity
	t.totalFees += fee
	t.numSells++

	t.append(orderbookv1.SideSell, price, quantity, proceeds, fee)
	return nil
}

func (t *Tracker) append(side orderbookv1.Side, price, quantity, amount, fee float64) {
	t.trades = append(t.trades, TradeRecord{
		Timestamp: t.now(),
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Amount:    amount,
		Fee:       fee,
		Cash:      t.cash,
		Inventory: t.inventory,
	})
}

func validateFill(price, quantity, fee float64) error {
	if !orderbookv1.PositiveFinite(price) {
		return errors.NewErrorDetails("fill price must be positive", string(errors.ErrInvalidTradeRecord), "price")
	}
	if !orderbookv1.PositiveFinite(quantity) {
		return errors.NewErrorDetails("fill quantity must be positive", string(errors.ErrInvalidTradeRecord), "quantity")
	}
	if !(fee >= 0) || math.IsInf(fee, 0) {
		return errors.NewErrorDetails("fee must not be negative", string(errors.ErrInvalidTradeRecord), "fee")
	}
	return nil
}

// Mark values the position at price and appends the snapshot to the history.
func (t *Tracker) Mark(price float64) Snapshot {
	snapshot := t.snapshot(price)
	t.history = append(t.history, snapshot)
	return snapshot
}

func (t *Tracker) snapshot(price float64) Snapshot {
	portfolio := t.cash + t.inventory*price
	total := portfolio - t.initialValue(price)

	unrealized := 0.0
	if t.inventory > 0 && t.totalBuyVolume > 0 {
		avgCost := t.buyNotional / t.totalBuyVolume
		unrealized = (price - avgCost) * t.inventory
	}

	return Snapshot{
		Timestamp:      t.now(),
		CurrentPrice:   price,
		Cash:           t.cash,
		Inventory:      t.inventory,
		PortfolioValue: portfolio,
		TotalPnL:       total,
		RealizedPnL:    total - unrealized,
		UnrealizedPnL:  unrealized,
	}
}

func (t *Tracker) initialValue(price float64) float64 {
	return t.initialCash + t.initialInventory*price
}

// Statistics aggregates the tracker at price. It does not append to the history.
func (t *Tracker) Statistics(price float64) Statistics {
	snapshot := t.snapshot(price)

	stats := Statistics{
		Snapshot:        snapshot,
		NumTrades:       len(t.trades),
		NumBuys:         t.numBuys,
		NumSells:        t.numSells,
		TotalBuyVolume:  t.totalBuyVolume,
		TotalSellVolume: t.totalSellVolume,
		TotalFees:       t.totalFees,
		WinRatePct:      t.winRate(),
	}
	if initial := t.initialValue(price); initial > 0 {
		stats.TotalReturnPct = snapshot.TotalPnL / initial * 100
	}
	return stats
}

// winRate pairs each sell with the record right before it when that record is
// a buy. It is a rough indicator, not round-trip matching.
func (t *Tracker) winRate() float64 {
	roundTrips := min(t.numBuys, t.numSells)
	if roundTrips == 0 {
		return 0
	}

	wins := 0
	for i := 1; i < len(t.trades); i++ {
		prev, cur := t.trades[i-1], t.trades[i]
		if cur.Side == orderbookv1.SideSell && prev.Side == orderbookv1.SideBuy && cur.Price > prev.Price {
			wins++
		}
	}
	return float64(wins) / float64(roundTrips) * 100
}

// Cash returns the cash balance.
func (t *Tracker) Cash() float64 {
	return t.cash
}

// Inventory returns the signed position.
func (t *Tracker) Inventory() float64 {
	return t.inventory
}

// Trades returns a copy of the trade records.
func (t *Tracker) Trades() []TradeRecord {
	return append([]TradeRecord(nil), t.trades...)
}

// History returns a copy of every marked snapshot.
func (t *Tracker) History() []Snapshot {
	return append([]Snapshot(nil), t.history...)
}
