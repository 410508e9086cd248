package inventory

import (
	"testing"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, max float64) *Manager {
	t.Helper()
	m, err := NewManager(Config{TargetInventory: 0, MaxInventory: max, RiskAversion: 0.01})
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	testCases := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults", config: DefaultConfig()},
		{name: "zero max", config: Config{MaxInventory: 0}, wantErr: true},
		{name: "negative risk aversion", config: Config{MaxInventory: 1, RiskAversion: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewManager(tc.config)
			if tc.wantErr {
				assert.Nil(t, m)
				assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidConfiguration))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.config.TargetInventory, m.Inventory())
		})
	}
}

func TestManager_LongInventorySkewsQuotes(t *testing.T) {
	m := newTestManager(t, 5)

	neutral := m.QuotePrices(50_000, 50)
	assert.Equal(t, 49_975.0, neutral.Bid)
	assert.Equal(t, 50_025.0, neutral.Ask)
	assert.Equal(t, 0.0, neutral.Skew)

	m.RecordFill(2.0, 50_000)
	long := m.QuotePrices(50_000, 50)

	assert.InDelta(t, 0.02, long.Skew, 1e-12)
	assert.Less(t, long.Bid, neutral.Bid, "bid moves away from mid when long")
	assert.Greater(t, long.Ask, neutral.Ask, "ask moves away from mid when long")
	assert.InDelta(t, 49_974.98, long.Bid, 1e-9)
	assert.InDelta(t, 50_025.02, long.Ask, 1e-9)
	assert.InDelta(t, 50.04, long.Spread, 1e-9)

	buy := m.QuoteSize(orderbookv1.SideBuy, 1.0)
	sell := m.QuoteSize(orderbookv1.SideSell, 1.0)
	assert.InDelta(t, 0.4, buy, 1e-12)
	assert.InDelta(t, 0.8, sell, 1e-12)
	assert.Less(t, buy, sell)
}

func TestManager_ShortInventorySkewsQuotes(t *testing.T) {
	m := newTestManager(t, 5)
	m.RecordFill(-1.0, 100)

	q := m.QuotePrices(100, 1)
	assert.InDelta(t, -0.01, q.Skew, 1e-12)
	assert.InDelta(t, 99.51, q.Bid, 1e-12)
	assert.InDelta(t, 100.49, q.Ask, 1e-12)

	assert.Greater(t, m.QuoteSize(orderbookv1.SideBuy, 1.0), m.QuoteSize(orderbookv1.SideSell, 1.0))
}

func TestManager_MayQuote(t *testing.T) {
	testCases := []struct {
		name      string
		inventory float64
		buy, sell bool
	}{
		{name: "flat", inventory: 0, buy: true, sell: true},
		{name: "below max", inventory: 4.99, buy: true, sell: true},
		{name: "at max", inventory: 5, buy: false, sell: true},
		{name: "beyond max", inventory: 6, buy: false, sell: true},
		{name: "at negative max", inventory: -5, buy: true, sell: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager(t, 5)
			m.RecordFill(tc.inventory, 1)

			assert.Equal(t, tc.buy, m.MayQuote(orderbookv1.SideBuy))
			assert.Equal(t, tc.sell, m.MayQuote(orderbookv1.SideSell))
			assert.False(t, m.MayQuote(orderbookv1.Side("HOLD")))

			if !tc.buy {
				assert.Equal(t, 0.0, m.QuoteSize(orderbookv1.SideBuy, 1))
			}
			if !tc.sell {
				assert.Equal(t, 0.0, m.QuoteSize(orderbookv1.SideSell, 1))
			}
		})
	}
}

func TestManager_QuoteSizeFloor(t *testing.T) {
	m := newTestManager(t, 5)
	m.RecordFill(-4.99, 1)

	// utilization ~1 gives 0.5, halved on the imbalanced side to ~0.25
	assert.InDelta(t, 0.2505, m.QuoteSize(orderbookv1.SideSell, 1), 1e-9)

	m2 := newTestManager(t, 1)
	m2.RecordFill(-0.999, 1)
	m2.config.MaxInventory = 0.5 // utilization ~2 drives the raw multiplier to zero
	assert.InDelta(t, 0.1, m2.QuoteSize(orderbookv1.SideBuy, 1), 1e-12)
}

func TestManager_RecordFillMetrics(t *testing.T) {
	m := newTestManager(t, 5)

	m.RecordFill(3, 100)
	m.RecordFill(3, 110)
	m.RecordFill(-7, 120)

	metrics := m.Metrics()
	assert.InDelta(t, -1.0, metrics.CurrentInventory, 1e-12)
	assert.InDelta(t, -120.0, metrics.InventoryValue, 1e-9)
	assert.Equal(t, 6.0, metrics.MaxInventoryReached)
	assert.Equal(t, 1, metrics.Breaches)
	assert.InDelta(t, -20.0, metrics.UtilizationPct, 1e-9)
	assert.False(t, metrics.IsNeutral)
	assert.InDelta(t, -0.01, metrics.Skew, 1e-12)

	m.RecordFill(1, 120)
	assert.True(t, m.IsNeutral(DefaultNeutralThreshold))
	assert.True(t, m.Metrics().IsNeutral)
}
