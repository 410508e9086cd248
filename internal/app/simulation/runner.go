package simulation

import (
	"context"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	reportpublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/report-publisher/v1"
	strategyv1 "github.com/muhammadchandra19/marketsim/internal/domain/strategy/v1"
	"github.com/muhammadchandra19/marketsim/internal/usecase/inventory"
	"github.com/muhammadchandra19/marketsim/internal/usecase/pnl"
	"github.com/muhammadchandra19/marketsim/internal/usecase/simulator"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
)

// Account is a strategy that keeps a PnL tracker and an inventory.
type Account interface {
	strategyv1.Strategy
	PnL() *pnl.Tracker
	Inventory() *inventory.Manager
}

// Result summarises a run.
type Result struct {
	Steps           int                              `json:"steps"`
	TradesForwarded int                              `json:"tradesForwarded"`
	Simulation      simulator.Summary                `json:"simulation"`
	Equity          reportpublisherv1.EquityRecord   `json:"equity"`
	Records         []reportpublisherv1.EquityRecord `json:"-"`
}

// Runner drives one strategy against simulated order flow. Each step feeds
// the market state to the strategy, advances the simulator and forwards the
// new ledger trades that name the strategy.
type Runner struct {
	sim      *simulator.Simulator
	engine   orderbookv1.MatchingEngine
	strategy Account
	logger   *logger.Logger

	reportInterval  int
	depthLevels     int
	reportPublisher reportpublisherv1.ReportPublisher
	now             func() time.Time

	// cursor is the number of ledger trades already forwarded.
	cursor  int
	step    int
	records []reportpublisherv1.EquityRecord
}

// NewRunner creates a runner with default options.
func NewRunner(sim *simulator.Simulator, engine orderbookv1.MatchingEngine, strategy Account, log *logger.Logger) *Runner {
	return NewRunnerWithOptions(sim, engine, strategy, log, DefaultRunnerOptions())
}

// NewRunnerWithOptions creates a runner with custom options.
func NewRunnerWithOptions(
	sim *simulator.Simulator,
	engine orderbookv1.MatchingEngine,
	strategy Account,
	log *logger.Logger,
	options *Options,
) *Runner {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if options == nil {
		options = DefaultRunnerOptions()
	}
	now := options.Clock
	if now == nil {
		now = time.Now
	}
	return &Runner{
		sim:             sim,
		engine:          engine,
		strategy:        strategy,
		logger:          log.WithFields(logger.Field{Key: "strategy", Value: strategy.Name()}),
		reportInterval:  options.ReportInterval,
		depthLevels:     options.DepthLevels,
		reportPublisher: options.ReportPublisher,
		now:             now,
		cursor:          engine.Orderbook().TradeCount(),
	}
}

// Run starts the strategy if needed, runs steps steps and stops it. A
// cancelled context ends the run early; the partial result is returned with
// the context error.
func (r *Runner) Run(ctx context.Context, steps int) (*Result, error) {
	if !r.strategy.IsRunning() {
		if err := r.strategy.Start(ctx); err != nil {
			return nil, err
		}
	}

	r.logger.InfoContext(ctx, "Simulation started", logger.Field{Key: "steps", Value: steps})

	var runErr error
	forwarded := 0
	for i := 0; i < steps; i++ {
		if runErr = ctx.Err(); runErr != nil {
			break
		}

		n, err := r.Step(ctx)
		forwarded += n
		if err != nil {
			runErr = err
			break
		}
	}

	// quotes are cancelled even when the run was interrupted
	if err := r.strategy.Stop(context.WithoutCancel(ctx)); err != nil {
		r.logger.WarnContext(ctx, "Failed to stop strategy", logger.Field{Key: "error", Value: err.Error()})
	}

	result := &Result{
		Steps:           r.step,
		TradesForwarded: forwarded,
		Simulation:      r.sim.Summary(),
		Equity:          r.equity(),
		Records:         append([]reportpublisherv1.EquityRecord(nil), r.records...),
	}

	r.logger.InfoContext(ctx, "Simulation finished",
		logger.Field{Key: "steps", Value: result.Steps},
		logger.Field{Key: "trades", Value: result.Simulation.TotalTrades},
		logger.Field{Key: "strategyTrades", Value: forwarded},
		logger.Field{Key: "totalPnL", Value: result.Equity.TotalPnL},
		logger.Field{Key: "inventory", Value: result.Equity.Inventory},
	)
	return result, runErr
}

// Step runs one step and returns the number of trades forwarded to the strategy.
func (r *Runner) Step(ctx context.Context) (int, error) {
	snapshot := strategyv1.SnapshotFromBook(r.engine.Orderbook(), r.depthLevels, r.now())
	if err := r.strategy.OnMarketUpdate(ctx, snapshot); err != nil {
		r.logger.WarnContext(ctx, "Market update failed",
			logger.Field{Key: "step", Value: r.step},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}

	if _, err := r.sim.Step(ctx); err != nil {
		return 0, err
	}
	r.step++

	forwarded, err := r.forwardTrades(ctx)
	if err != nil {
		return forwarded, err
	}

	if r.reportInterval > 0 && r.step%r.reportInterval == 0 {
		r.report(ctx)
	}
	return forwarded, nil
}

// forwardTrades delivers every ledger trade after the cursor exactly once.
func (r *Runner) forwardTrades(ctx context.Context) (int, error) {
	trades := r.engine.Orderbook().TradesSince(r.cursor)
	forwarded := 0
	for _, trade := range trades {
		r.cursor++
		if !trade.Involves(r.strategy.Name()) {
			continue
		}
		if err := r.strategy.OnTrade(ctx, trade); err != nil {
			return forwarded, err
		}
		forwarded++
	}
	return forwarded, nil
}

func (r *Runner) report(ctx context.Context) {
	record := r.equity()
	r.records = append(r.records, record)

	if r.reportPublisher == nil {
		return
	}
	if err := r.reportPublisher.PublishEquity(ctx, &record); err != nil {
		r.logger.ErrorContext(ctx, err, logger.Field{Key: "step", Value: r.step})
	}
}

// equity marks the strategy's PnL at the current mid, or at the last trade
// price when one side of the book is empty.
func (r *Runner) equity() reportpublisherv1.EquityRecord {
	price, ok := r.engine.Orderbook().MidPrice()
	if !ok {
		price = r.sim.CurrentPrice()
	}

	snapshot := r.strategy.PnL().Mark(price)
	metrics := r.strategy.Inventory().Metrics()
	return reportpublisherv1.EquityRecord{
		Strategy:                r.strategy.Name(),
		Symbol:                  r.engine.Orderbook().Symbol(),
		Step:                    r.step,
		SimTime:                 r.sim.Time(),
		Time:                    r.now(),
		Price:                   price,
		Cash:                    snapshot.Cash,
		Inventory:               snapshot.Inventory,
		PortfolioValue:          snapshot.PortfolioValue,
		TotalPnL:                snapshot.TotalPnL,
		RealizedPnL:             snapshot.RealizedPnL,
		UnrealizedPnL:           snapshot.UnrealizedPnL,
		InventoryUtilizationPct: metrics.UtilizationPct,
		Skew:                    metrics.Skew,
	}
}

// Records returns the equity records emitted so far.
func (r *Runner) Records() []reportpublisherv1.EquityRecord {
	return append([]reportpublisherv1.EquityRecord(nil), r.records...)
}
