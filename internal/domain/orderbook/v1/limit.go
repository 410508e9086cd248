package orderbookv1

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNilOrder         = errors.New("order cannot be nil")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidSize      = errors.New("size must be positive")
	ErrOrderNotFound    = errors.New("order not found in limit")
	ErrOrderAlreadyRest = errors.New("order already rests in a limit")
)

const volumeEpsilon = 1e-9

// Limit represents a price level: the resting orders at one exact price on one
// side, kept in arrival order as an intrusive doubly linked list so that an
// order can be unlinked in O(1) on cancel.
type Limit struct {
	Price       float64 `json:"price"`
	TotalVolume float64 `json:"totalVolume"`

	head  *Order
	tail  *Order
	count int
}

// NewLimit creates a new Limit with the specified price.
func NewLimit(price float64) *Limit {
	return &Limit{
		Price: price,
	}
}

// AddOrder appends an order at the back of the queue and updates the total volume.
func (l *Limit) AddOrder(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.Remaining() <= 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidSize, order.Remaining())
	}
	if order.limit != nil {
		return ErrOrderAlreadyRest
	}

	order.limit = l
	order.prev = l.tail
	order.next = nil
	if l.tail != nil {
		l.tail.next = order
	} else {
		l.head = order
	}
	l.tail = order
	l.count++
	l.TotalVolume += order.Remaining()

	return nil
}

// RemoveOrder unlinks an order from the limit and updates the total volume.
func (l *Limit) RemoveOrder(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.limit != l {
		return ErrOrderNotFound
	}

	l.TotalVolume -= order.Remaining()
	l.unlink(order)
	return nil
}

// Fill matches the incoming order against the queue head first and returns
// the trades plus the resting orders that became fully filled (and were
// unlinked). Every trade executes at the limit price.
func (l *Limit) Fill(incoming *Order, timestamp int64) ([]Trade, []*Order) {
	if incoming == nil {
		return nil, nil
	}

	var (
		trades []Trade
		filled []*Order
	)

	for resting := l.head; resting != nil && incoming.Remaining() > 0; {
		next := resting.next

		quantity := resting.fill(math.Min(incoming.Remaining(), resting.Remaining()))
		incoming.fill(quantity)
		l.TotalVolume -= quantity

		trades = append(trades, newTrade(incoming, resting, l.Price, quantity, timestamp))

		if resting.IsFilled() {
			l.unlink(resting)
			filled = append(filled, resting)
		}
		resting = next
	}

	return trades, filled
}

func (l *Limit) unlink(order *Order) {
	if order.prev != nil {
		order.prev.next = order.next
	} else {
		l.head = order.next
	}
	if order.next != nil {
		order.next.prev = order.prev
	} else {
		l.tail = order.prev
	}
	order.prev, order.next, order.limit = nil, nil, nil
	l.count--

	if l.count == 0 {
		l.TotalVolume = 0
	}
}

// IsEmpty checks if the limit has no orders
func (l *Limit) IsEmpty() bool {
	return l.count == 0
}

// OrderCount returns the number of orders at this limit
func (l *Limit) OrderCount() int {
	return l.count
}

// Head returns the oldest resting order, or nil.
func (l *Limit) Head() *Order {
	return l.head
}

// GetTotalVolume returns the total remaining volume at this limit
func (l *Limit) GetTotalVolume() float64 {
	return l.TotalVolume
}

// GetOrders returns the orders in arrival order.
func (l *Limit) GetOrders() []*Order {
	orders := make([]*Order, 0, l.count)
	for o := l.head; o != nil; o = o.next {
		orders = append(orders, o)
	}
	return orders
}

// Validate performs basic validation of the limit's state
func (l *Limit) Validate() error {
	if l.Price <= 0 {
		return fmt.Errorf("%w: limit price %f", ErrInvalidPrice, l.Price)
	}

	calculatedVolume := 0.0
	n := 0
	var prev *Order
	for order := l.head; order != nil; order = order.next {
		if order.limit != l {
			return fmt.Errorf("order %s linked into limit %f but owned by another", order.ID, l.Price)
		}
		if order.prev != prev {
			return fmt.Errorf("broken back link at order %s", order.ID)
		}
		if order.Remaining() <= 0 {
			return fmt.Errorf("%w: order %s rests with remaining %f", ErrInvalidSize, order.ID, order.Remaining())
		}
		if order.Price != l.Price {
			return fmt.Errorf("order %s price %f rests at limit %f", order.ID, order.Price, l.Price)
		}
		calculatedVolume += order.Remaining()
		prev = order
		n++
	}

	if n != l.count {
		return fmt.Errorf("order count mismatch: linked %d, stored %d", n, l.count)
	}
	if prev != l.tail {
		return fmt.Errorf("tail does not point at the last linked order")
	}

	if math.Abs(calculatedVolume-l.TotalVolume) > volumeEpsilon {
		return fmt.Errorf("volume mismatch: calculated %f, stored %f", calculatedVolume, l.TotalVolume)
	}

	return nil
}
