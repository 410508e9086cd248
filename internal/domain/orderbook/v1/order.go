package orderbookv1

import (
	"math"
	"time"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/oklog/ulid/v2"
)

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a bid.
	SideBuy Side = "BUY"
	// SideSell represents an ask.
	SideSell Side = "SELL"
)

// Opposite returns the contra side.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// IsValid reports whether s is BUY or SELL.
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// OrderKind represents the execution style of an order.
type OrderKind string

const (
	// OrderKindLimit rests in the book until filled or cancelled.
	OrderKindLimit OrderKind = "LIMIT"
	// OrderKindMarket consumes available liquidity and never rests.
	OrderKindMarket OrderKind = "MARKET"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending means no quantity has been filled yet.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPartial means some but not all quantity has been filled.
	OrderStatusPartial OrderStatus = "PARTIAL"
	// OrderStatusFilled means the whole quantity has been filled.
	OrderStatusFilled OrderStatus = "FILLED"
	// OrderStatusCancelled means the order was removed before being fully filled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition can leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled
}

// Order represents a single order. Identity fields are set at construction;
// Filled and the cancellation flag are mutated only by matching and Cancel.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userID"`
	Side      Side      `json:"side"`
	Kind      OrderKind `json:"kind"`
	Price     float64   `json:"price"`
	Quantity  float64   `json:"quantity"`
	Filled    float64   `json:"filled"`
	Timestamp int64     `json:"timestamp"`
	Sequence  int64     `json:"sequence"` // Arrival sequence assigned by the book

	cancelled bool

	// intrusive FIFO links, owned by the resting Limit
	limit *Limit
	prev  *Order
	next  *Order
}

// NewOrderID returns a new lexicographically time-ordered order id.
func NewOrderID() string {
	return ulid.Make().String()
}

// PositiveFinite reports whether v is usable as a price or quantity. NaN and
// infinities are rejected.
func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// NewLimitOrder creates a validated limit order.
func NewLimitOrder(userID string, side Side, price, quantity float64) (*Order, error) {
	order := &Order{
		ID:        NewOrderID(),
		UserID:    userID,
		Side:      side,
		Kind:      OrderKindLimit,
		Price:     price,
		Quantity:  quantity,
		Timestamp: time.Now().UnixNano(),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// NewMarketOrder creates a validated market order. Market orders carry no price.
func NewMarketOrder(userID string, side Side, quantity float64) (*Order, error) {
	order := &Order{
		ID:        NewOrderID(),
		UserID:    userID,
		Side:      side,
		Kind:      OrderKindMarket,
		Quantity:  quantity,
		Timestamp: time.Now().UnixNano(),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks the construction-time rules of an order.
func (o *Order) Validate() error {
	if !o.Side.IsValid() {
		return errors.NewErrorDetails("order side must be BUY or SELL", string(errors.ErrInvalidOrderSide), "side")
	}
	if o.Kind != OrderKindLimit && o.Kind != OrderKindMarket {
		return errors.NewErrorDetails("order kind must be LIMIT or MARKET", string(errors.ErrInvalidOrderKind), "kind")
	}
	if !PositiveFinite(o.Quantity) {
		return errors.NewErrorDetails("order quantity must be positive", string(errors.ErrInvalidOrderSize), "quantity")
	}
	if o.Kind == OrderKindLimit && !PositiveFinite(o.Price) {
		return errors.NewErrorDetails("limit order price must be positive", string(errors.ErrInvalidOrderPrice), "price")
	}
	return nil
}

// IsBid checks if the order is a buy order.
func (o *Order) IsBid() bool {
	return o.Side == SideBuy
}

// IsAsk checks if the order is a sell order.
func (o *Order) IsAsk() bool {
	return o.Side == SideSell
}

// IsMarket checks if the order is a market order.
func (o *Order) IsMarket() bool {
	return o.Kind == OrderKindMarket
}

// Remaining returns the unfilled quantity.
func (o *Order) Remaining() float64 {
	return o.Quantity - o.Filled
}

// IsFilled checks if the whole quantity has been filled.
func (o *Order) IsFilled() bool {
	return o.Filled >= o.Quantity
}

// Status derives the lifecycle state from the filled quantity and the cancellation flag.
func (o *Order) Status() OrderStatus {
	switch {
	case o.IsFilled():
		return OrderStatusFilled
	case o.cancelled:
		return OrderStatusCancelled
	case o.Filled > 0:
		return OrderStatusPartial
	default:
		return OrderStatusPending
	}
}

// Crosses reports whether the order is willing to trade at price.
// Market orders cross any price.
func (o *Order) Crosses(price float64) bool {
	if o.IsMarket() {
		return true
	}
	if o.IsBid() {
		return o.Price >= price
	}
	return o.Price <= price
}

// Cancel marks the order cancelled. It returns false when the order is already terminal.
func (o *Order) Cancel() bool {
	if o.Status().IsTerminal() {
		return false
	}
	o.cancelled = true
	return true
}

// IsResting reports whether the order currently sits in a price level.
func (o *Order) IsResting() bool {
	return o.limit != nil
}

// Limit returns the price level the order rests in, or nil.
func (o *Order) Limit() *Limit {
	return o.limit
}

// fill consumes up to quantity and returns the amount actually filled. A
// remainder within volumeEpsilon is consumed too so no dust is left behind.
func (o *Order) fill(quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}
	remaining := o.Remaining()
	if quantity >= remaining-volumeEpsilon {
		o.Filled = o.Quantity
		return remaining
	}
	o.Filled += quantity
	return quantity
}
