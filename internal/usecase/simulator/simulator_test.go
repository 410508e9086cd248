package simulator

import (
	"context"
	"fmt"
	"math"
	"testing"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/internal/usecase/matching"
	"github.com/muhammadchandra19/marketsim/internal/usecase/orderbook"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, mutate func(*Config)) (*Simulator, *orderbook.Orderbook) {
	t.Helper()
	config := DefaultConfig()
	if mutate != nil {
		mutate(&config)
	}
	book := orderbook.NewOrderbook(config.Symbol)
	sim, err := NewSimulator(config, matching.NewEngine(book, logger.NewNopLogger()), nil)
	require.NoError(t, err)
	return sim, book
}

func isCents(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestNewSimulator_InvalidConfig(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero price", mutate: func(c *Config) { c.InitialPrice = 0 }},
		{name: "negative rate", mutate: func(c *Config) { c.ArrivalRate = -1 }},
		{name: "zero spread", mutate: func(c *Config) { c.SpreadBps = 0 }},
		{name: "zero step", mutate: func(c *Config) { c.StepSeconds = 0 }},
		{name: "ratio above one", mutate: func(c *Config) { c.AggressiveRatio = 1.5 }},
		{name: "inverted size bounds", mutate: func(c *Config) { c.MinSize, c.MaxSize = 1, 0.5 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)

			sim, err := NewSimulator(config, nil, nil)
			assert.Nil(t, sim)
			assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidConfiguration))
		})
	}
}

func TestSimulator_InitializeBook(t *testing.T) {
	sim, book := newTestSimulator(t, nil)

	require.NoError(t, sim.InitializeBook(context.Background(), 10, 1.0))
	require.NoError(t, book.Validate())

	bid, _ := book.BestBid()
	ask, _ := book.BestAsk()
	assert.Equal(t, 49_975.0, bid)
	assert.Equal(t, 50_025.0, ask)

	depth := book.Depth(0)
	require.Len(t, depth.Bids, 10)
	require.Len(t, depth.Asks, 10)
	assert.Equal(t, 49_750.0, depth.Bids[9].Price)
	assert.Equal(t, 50_250.0, depth.Asks[9].Price)

	for _, level := range append(depth.Bids, depth.Asks...) {
		assert.GreaterOrEqual(t, level.Quantity, 0.8)
		assert.LessOrEqual(t, level.Quantity, 1.2)
		assert.Equal(t, 1, level.OrderCount)
	}

	head := book.Bids()[0].Head()
	assert.Equal(t, "MM_BID_0", head.UserID)
	assert.Empty(t, book.Trades())
}

func TestSimulator_InitializeBookRejectsBadInput(t *testing.T) {
	sim, _ := newTestSimulator(t, nil)

	err := sim.InitializeBook(context.Background(), 0, 1)
	assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidConfiguration))
	err = sim.InitializeBook(context.Background(), 5, 0)
	assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidConfiguration))
}

func TestSimulator_GenerateOrder(t *testing.T) {
	sim, book := newTestSimulator(t, nil)
	require.NoError(t, sim.InitializeBook(context.Background(), 10, 1.0))
	bid, _ := book.BestBid()
	ask, _ := book.BestAsk()

	aggressive := 0
	for i := 0; i < 2_000; i++ {
		params := sim.GenerateOrder()

		require.True(t, params.Side.IsValid())
		require.GreaterOrEqual(t, params.Quantity, 0.01)
		require.LessOrEqual(t, params.Quantity, 5.0)
		require.True(t, isCents(params.Price), "price %f", params.Price)

		switch {
		case params.IsAggressive && params.Side == orderbookv1.SideBuy:
			require.GreaterOrEqual(t, params.Price, ask)
			require.LessOrEqual(t, params.Price, ask*1.001+0.01)
		case params.IsAggressive:
			require.LessOrEqual(t, params.Price, bid)
			require.GreaterOrEqual(t, params.Price, bid*0.999-0.01)
		case params.Side == orderbookv1.SideBuy:
			require.LessOrEqual(t, params.Price, bid)
		default:
			require.GreaterOrEqual(t, params.Price, ask)
		}
		if params.IsAggressive {
			aggressive++
		}
	}

	// 30% aggressive with a generous tolerance
	assert.InDelta(t, 600, aggressive, 150)
}

func TestSimulator_StepWithoutArrivals(t *testing.T) {
	sim, book := newTestSimulator(t, func(c *Config) { c.ArrivalRate = 0 })
	require.NoError(t, sim.InitializeBook(context.Background(), 5, 1.0))

	reports, err := sim.Simulate(context.Background(), 3)
	require.NoError(t, err)

	assert.Empty(t, reports)
	assert.Empty(t, sim.OrderHistory())
	assert.InDelta(t, 0.3, sim.Time(), 1e-12)
	require.Len(t, sim.PriceHistory(), 3)
	assert.Equal(t, 0, book.TradeCount())

	summary := sim.Summary()
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 50_000.0, summary.FinalPrice)
	assert.Equal(t, 0.0, summary.PriceChange)
	assert.Equal(t, 0.0, summary.PriceVolatility)
	assert.Equal(t, 50.0, summary.AvgSpread)
}

func TestSimulator_StepWithArrivals(t *testing.T) {
	sim, book := newTestSimulator(t, func(c *Config) { c.ArrivalRate = 1_000 })
	require.NoError(t, sim.InitializeBook(context.Background(), 10, 1.0))

	reports, err := sim.Simulate(context.Background(), 200)
	require.NoError(t, err)
	require.NoError(t, book.Validate())

	history := sim.OrderHistory()
	require.Len(t, history, 200)
	require.Len(t, reports, 200)
	for i, event := range history {
		assert.Equal(t, fmt.Sprintf("TRADER_%d", i+1), event.TraderID)
		assert.Equal(t, reports[i].FilledQuantity, event.Filled)
	}

	summary := sim.Summary()
	assert.Equal(t, 200, summary.TotalOrders)
	assert.Equal(t, book.TradeCount(), summary.TotalTrades)
	assert.Equal(t, book.TotalVolume(), summary.TotalVolume)

	aggressive := 0
	for _, event := range history {
		if event.IsAggressive {
			aggressive++
		}
	}
	assert.Equal(t, aggressive, summary.AggressiveOrders)
	assert.Greater(t, summary.TotalTrades, 0)
}

func TestSimulator_Deterministic(t *testing.T) {
	run := func() ([]OrderEvent, []orderbookv1.Trade) {
		sim, book := newTestSimulator(t, func(c *Config) { c.ArrivalRate = 5; c.Seed = 7 })
		require.NoError(t, sim.InitializeBook(context.Background(), 10, 0.5))
		_, err := sim.Simulate(context.Background(), 300)
		require.NoError(t, err)
		return sim.OrderHistory(), book.Trades()
	}

	ordersA, tradesA := run()
	ordersB, tradesB := run()

	assert.Equal(t, ordersA, ordersB)
	require.Equal(t, len(tradesA), len(tradesB))
	for i := range tradesA {
		assert.Equal(t, tradesA[i].Price, tradesB[i].Price)
		assert.Equal(t, tradesA[i].Quantity, tradesB[i].Quantity)
		assert.Equal(t, tradesA[i].BuyerID, tradesB[i].BuyerID)
	}
}

func TestSimulator_SimulateHonoursContext(t *testing.T) {
	sim, _ := newTestSimulator(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Simulate(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sim.PriceHistory())
	assert.Equal(t, Summary{}, sim.Summary())
}
