package orderbookv1

import (
	"math"
	"testing"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLimitOrder(t *testing.T) {
	testCases := []struct {
		name     string
		side     Side
		price    float64
		quantity float64
		code     errors.ErrorCode
	}{
		{name: "valid buy", side: SideBuy, price: 100, quantity: 1},
		{name: "valid sell", side: SideSell, price: 100, quantity: 0.5},
		{name: "zero quantity", side: SideBuy, price: 100, quantity: 0, code: errors.ErrInvalidOrderSize},
		{name: "negative quantity", side: SideSell, price: 100, quantity: -1, code: errors.ErrInvalidOrderSize},
		{name: "zero price", side: SideBuy, price: 0, quantity: 1, code: errors.ErrInvalidOrderPrice},
		{name: "negative price", side: SideSell, price: -5, quantity: 1, code: errors.ErrInvalidOrderPrice},
		{name: "unknown side", side: Side("HOLD"), price: 100, quantity: 1, code: errors.ErrInvalidOrderSide},
		{name: "NaN price", side: SideBuy, price: math.NaN(), quantity: 1, code: errors.ErrInvalidOrderPrice},
		{name: "infinite price", side: SideSell, price: math.Inf(1), quantity: 1, code: errors.ErrInvalidOrderPrice},
		{name: "NaN quantity", side: SideBuy, price: 100, quantity: math.NaN(), code: errors.ErrInvalidOrderSize},
		{name: "infinite quantity", side: SideSell, price: 100, quantity: math.Inf(1), code: errors.ErrInvalidOrderSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := NewLimitOrder("trader", tc.side, tc.price, tc.quantity)
			if tc.code != "" {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, tc.code), "got %v", err)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, OrderKindLimit, order.Kind)
			assert.Equal(t, OrderStatusPending, order.Status())
			assert.Equal(t, tc.quantity, order.Remaining())
		})
	}
}

func TestNewMarketOrder(t *testing.T) {
	order, err := NewMarketOrder("taker", SideBuy, 2)
	require.NoError(t, err)
	assert.True(t, order.IsMarket())
	assert.Zero(t, order.Price)
	assert.True(t, order.Crosses(1e12))

	_, err = NewMarketOrder("taker", SideSell, 0)
	assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidOrderSize))
}

func TestOrderIDsAreOrdered(t *testing.T) {
	a := NewOrderID()
	b := NewOrderID()
	assert.Less(t, a, b)
}

func TestOrder_StatusTransitions(t *testing.T) {
	order, err := NewLimitOrder("trader", SideBuy, 100, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 0.4, order.fill(0.4))
	assert.Equal(t, OrderStatusPartial, order.Status())

	assert.InDelta(t, 0.6, order.fill(5), 1e-12)
	assert.Equal(t, OrderStatusFilled, order.Status())
	assert.Equal(t, order.Quantity, order.Filled)
	assert.Zero(t, order.Remaining())

	assert.False(t, order.Cancel(), "filled order is terminal")
	assert.Equal(t, OrderStatusFilled, order.Status())
	assert.Zero(t, order.fill(1))
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		order, _ := NewLimitOrder("trader", SideSell, 100, 1.0)
		assert.True(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status())
		assert.False(t, order.Cancel())
	})

	t.Run("partial", func(t *testing.T) {
		order, _ := NewLimitOrder("trader", SideSell, 100, 1.0)
		order.fill(0.25)
		assert.True(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status())
		assert.Equal(t, 0.25, order.Filled)
	})
}

func TestOrder_Crosses(t *testing.T) {
	buy := &Order{Side: SideBuy, Kind: OrderKindLimit, Price: 100}
	sell := &Order{Side: SideSell, Kind: OrderKindLimit, Price: 100}

	assert.True(t, buy.Crosses(99))
	assert.True(t, buy.Crosses(100))
	assert.False(t, buy.Crosses(101))
	assert.True(t, sell.Crosses(101))
	assert.True(t, sell.Crosses(100))
	assert.False(t, sell.Crosses(99))
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, SideSell, SideBuy.Opposite())
	assert.Equal(t, SideBuy, SideSell.Opposite())
}
