package simulation

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	reportpublisherv1_mock "github.com/muhammadchandra19/marketsim/internal/domain/report-publisher/v1/mock"
	"github.com/muhammadchandra19/marketsim/internal/usecase/matching"
	"github.com/muhammadchandra19/marketsim/internal/usecase/orderbook"
	"github.com/muhammadchandra19/marketsim/internal/usecase/simulator"
	"github.com/muhammadchandra19/marketsim/internal/usecase/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	book   *orderbook.Orderbook
	engine *matching.Engine
	sim    *simulator.Simulator
	mm     *strategy.MarketMaker
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupTestFixture(t *testing.T, arrivalRate float64) *testFixture {
	t.Helper()
	ctx := context.Background()

	simConfig := simulator.DefaultConfig()
	simConfig.ArrivalRate = arrivalRate
	simConfig.Seed = 11

	book := orderbook.NewOrderbook(simConfig.Symbol)
	engine := matching.NewEngine(book, nil)
	sim, err := simulator.NewSimulator(simConfig, engine, nil)
	require.NoError(t, err)
	require.NoError(t, sim.InitializeBook(ctx, 10, 1.0))

	mm, err := strategy.NewMarketMaker(strategy.DefaultMarketMakerConfig(), engine, nil)
	require.NoError(t, err)

	return &testFixture{book: book, engine: engine, sim: sim, mm: mm}
}

func (f *testFixture) runner(options *Options) *Runner {
	if options.Clock == nil {
		options.Clock = func() time.Time { return fixedNow }
	}
	return NewRunnerWithOptions(f.sim, f.engine, f.mm, nil, options)
}

func restingOwners(book *orderbook.Orderbook) map[string]int {
	owners := make(map[string]int)
	for _, limit := range append(book.Bids(), book.Asks()...) {
		for _, order := range limit.GetOrders() {
			owners[order.UserID]++
		}
	}
	return owners
}

func TestRunner_Run(t *testing.T) {
	f := setupTestFixture(t, 5)
	r := f.runner(&Options{ReportInterval: 50, DepthLevels: 10})

	result, err := r.Run(context.Background(), 300)
	require.NoError(t, err)
	require.NoError(t, f.book.Validate())

	assert.Equal(t, 300, result.Steps)
	assert.Len(t, result.Records, 6)
	for i, record := range result.Records {
		assert.Equal(t, (i+1)*50, record.Step)
		assert.Equal(t, "MarketMaker", record.Strategy)
		assert.Equal(t, "BTCUSDT", record.Symbol)
		assert.Equal(t, fixedNow, record.Time)
	}

	// every ledger trade naming the strategy was forwarded exactly once
	involved := 0
	for _, trade := range f.book.Trades() {
		if trade.Involves("MarketMaker") {
			involved++
		}
	}
	assert.Equal(t, involved, result.TradesForwarded)
	assert.Len(t, f.mm.PnL().Trades(), involved)
	assert.Len(t, f.mm.TradeHistory(), involved)

	assert.InDelta(t, f.mm.PnL().Inventory(), f.mm.Inventory().Inventory(), 1e-9)
	assert.InDelta(t, result.Equity.Inventory, f.mm.Inventory().Inventory(), 1e-9)
	assert.Equal(t, f.book.TradeCount(), result.Simulation.TotalTrades)

	assert.False(t, f.mm.IsRunning())
	assert.Zero(t, restingOwners(f.book)["MarketMaker"])
}

func TestRunner_QuotesWithoutFlow(t *testing.T) {
	f := setupTestFixture(t, 0)
	r := f.runner(&Options{ReportInterval: 10, DepthLevels: 10})

	result, err := r.Run(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TradesForwarded)
	assert.Equal(t, 0, result.Simulation.TotalOrders)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, 0.0, result.Equity.TotalPnL)
	assert.Equal(t, 100_000.0, result.Equity.Cash)
	assert.Equal(t, 50_000.0, result.Equity.Price)

	// a fresh quote pair per step
	assert.Len(t, f.mm.OrderHistory(), 40)
}

func TestRunner_PublishesEquity(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := reportpublisherv1_mock.NewMockReportPublisher(ctrl)

	f := setupTestFixture(t, 0)
	r := f.runner(&Options{ReportInterval: 10, DepthLevels: 10, ReportPublisher: publisher})

	gomock.InOrder(
		publisher.EXPECT().PublishEquity(gomock.Any(), gomock.Any()).Return(nil),
		publisher.EXPECT().PublishEquity(gomock.Any(), gomock.Any()).Return(stderrors.New("redis down")),
		publisher.EXPECT().PublishEquity(gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := r.Run(context.Background(), 30)
	require.NoError(t, err)
	assert.Len(t, result.Records, 3)
}

func TestRunner_CancelledContext(t *testing.T) {
	f := setupTestFixture(t, 5)
	r := f.runner(&Options{ReportInterval: 10, DepthLevels: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Steps)
	assert.False(t, f.mm.IsRunning())
}

func TestRunner_SkipsTradesBeforeStart(t *testing.T) {
	f := setupTestFixture(t, 0)
	ctx := context.Background()

	// a trade naming the strategy that predates the runner is never forwarded
	_, err := f.engine.SubmitLimitOrder(ctx, "MarketMaker", orderbookv1.SideBuy, 50_025, 0.1)
	require.NoError(t, err)
	require.Equal(t, 1, f.book.TradeCount())

	result, err := f.runner(&Options{DepthLevels: 10}).Run(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TradesForwarded)
	assert.Empty(t, f.mm.PnL().Trades())
}
