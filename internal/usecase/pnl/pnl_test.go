package pnl

import (
	"math"
	"testing"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestTracker() *Tracker {
	return NewTracker(100_000, 0, WithClock(func() time.Time { return fixedNow }))
}

func TestTracker_BuyThenMark(t *testing.T) {
	tracker := newTestTracker()

	require.NoError(t, tracker.RecordBuy(50_000, 1.0, 10))
	assert.Equal(t, 49_990.0, tracker.Cash())
	assert.Equal(t, 1.0, tracker.Inventory())

	snapshot := tracker.Mark(50_500)

	assert.Equal(t, 500.0, snapshot.UnrealizedPnL)
	assert.Equal(t, 490.0, snapshot.TotalPnL)
	assert.Equal(t, -10.0, snapshot.RealizedPnL)
	assert.Equal(t, 100_490.0, snapshot.PortfolioValue)
	assert.Equal(t, fixedNow, snapshot.Timestamp)
}

func TestTracker_RoundTrip(t *testing.T) {
	tracker := newTestTracker()

	require.NoError(t, tracker.RecordBuy(50_000, 1.0, 10))
	tracker.Mark(50_500)
	require.NoError(t, tracker.RecordSell(50_500, 0.5, 5))
	snapshot := tracker.Mark(51_000)

	// cash 49990 + 25245 = 75235, inventory 0.5 at 51000
	assert.Equal(t, 75_235.0, snapshot.Cash)
	assert.Equal(t, 0.5, snapshot.Inventory)
	assert.Equal(t, 735.0, snapshot.TotalPnL)
	assert.Equal(t, 500.0, snapshot.UnrealizedPnL)
	assert.Equal(t, 235.0, snapshot.RealizedPnL)

	history := tracker.History()
	require.Len(t, history, 2)
	assert.Equal(t, 50_500.0, history[0].CurrentPrice)
	assert.Equal(t, 51_000.0, history[1].CurrentPrice)

	trades := tracker.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, orderbookv1.SideBuy, trades[0].Side)
	assert.Equal(t, 50_010.0, trades[0].Amount)
	assert.Equal(t, orderbookv1.SideSell, trades[1].Side)
	assert.Equal(t, 25_245.0, trades[1].Amount)
	assert.Equal(t, 0.5, trades[1].Inventory)
}

func TestTracker_ShortPositionHasNoUnrealized(t *testing.T) {
	tracker := newTestTracker()

	require.NoError(t, tracker.RecordSell(100, 2, 0))
	snapshot := tracker.Mark(90)

	assert.Equal(t, 0.0, snapshot.UnrealizedPnL)
	assert.Equal(t, 20.0, snapshot.TotalPnL)
	assert.Equal(t, 20.0, snapshot.RealizedPnL)
}

func TestTracker_AverageCostUsesAllBuys(t *testing.T) {
	tracker := newTestTracker()

	require.NoError(t, tracker.RecordBuy(100, 1, 0))
	require.NoError(t, tracker.RecordBuy(200, 1, 0))
	require.NoError(t, tracker.RecordSell(250, 1, 0))

	// average cost 150 over both buys, even though one unit was sold
	snapshot := tracker.Mark(210)
	assert.Equal(t, 60.0, snapshot.UnrealizedPnL)
	assert.Equal(t, 160.0, snapshot.TotalPnL)
}

func TestTracker_InitialInventory(t *testing.T) {
	tracker := NewTracker(1_000, 2)

	snapshot := tracker.Mark(50)
	assert.Equal(t, 1_100.0, snapshot.PortfolioValue)
	assert.Equal(t, 0.0, snapshot.TotalPnL)
	assert.Equal(t, 0.0, snapshot.UnrealizedPnL, "no buys recorded, no cost basis")
}

func TestTracker_RecordValidation(t *testing.T) {
	testCases := []struct {
		name                 string
		price, quantity, fee float64
		field                string
	}{
		{name: "zero price", price: 0, quantity: 1, field: "price"},
		{name: "negative quantity", price: 1, quantity: -1, field: "quantity"},
		{name: "negative fee", price: 1, quantity: 1, fee: -0.1, field: "fee"},
		{name: "NaN price", price: math.NaN(), quantity: 1, field: "price"},
		{name: "infinite price", price: math.Inf(1), quantity: 1, field: "price"},
		{name: "NaN quantity", price: 1, quantity: math.NaN(), field: "quantity"},
		{name: "infinite quantity", price: 1, quantity: math.Inf(1), field: "quantity"},
		{name: "NaN fee", price: 1, quantity: 1, fee: math.NaN(), field: "fee"},
		{name: "infinite fee", price: 1, quantity: 1, fee: math.Inf(1), field: "fee"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := newTestTracker()

			errBuy := tracker.RecordBuy(tc.price, tc.quantity, tc.fee)
			errSell := tracker.RecordSell(tc.price, tc.quantity, tc.fee)

			for _, err := range []error{errBuy, errSell} {
				require.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidTradeRecord))
				var details *errors.ErrorDetails
				require.ErrorAs(t, err, &details)
				assert.Equal(t, tc.field, details.Field)
			}
			assert.Equal(t, 100_000.0, tracker.Cash())
			assert.Empty(t, tracker.Trades())
		})
	}
}

func TestTracker_Statistics(t *testing.T) {
	tracker := newTestTracker()

	require.NoError(t, tracker.RecordBuy(100, 1, 1))
	require.NoError(t, tracker.RecordSell(110, 1, 1)) // win
	require.NoError(t, tracker.RecordBuy(120, 1, 1))
	require.NoError(t, tracker.RecordSell(115, 1, 1)) // loss
	require.NoError(t, tracker.RecordSell(130, 1, 1)) // not preceded by a buy

	stats := tracker.Statistics(100)

	assert.Equal(t, 5, stats.NumTrades)
	assert.Equal(t, 2, stats.NumBuys)
	assert.Equal(t, 3, stats.NumSells)
	assert.Equal(t, 2.0, stats.TotalBuyVolume)
	assert.Equal(t, 3.0, stats.TotalSellVolume)
	assert.Equal(t, 5.0, stats.TotalFees)
	assert.Equal(t, 50.0, stats.WinRatePct)
	assert.Equal(t, -1.0, stats.Inventory)
	assert.InDelta(t, stats.TotalPnL/100_000*100, stats.TotalReturnPct, 1e-12)
	assert.Empty(t, tracker.History(), "statistics do not mark")
}

func TestTracker_StatisticsNoTrades(t *testing.T) {
	stats := newTestTracker().Statistics(50_000)

	assert.Equal(t, 0.0, stats.WinRatePct)
	assert.Equal(t, 0.0, stats.TotalReturnPct)
	assert.Equal(t, 100_000.0, stats.PortfolioValue)
}
