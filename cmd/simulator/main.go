package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/muhammadchandra19/marketsim/internal/app/simulation"
	"github.com/muhammadchandra19/marketsim/internal/usecase/matching"
	"github.com/muhammadchandra19/marketsim/internal/usecase/orderbook"
	reportpublisher "github.com/muhammadchandra19/marketsim/internal/usecase/report-publisher"
	"github.com/muhammadchandra19/marketsim/internal/usecase/simulator"
	"github.com/muhammadchandra19/marketsim/internal/usecase/strategy"
	tradepublisher "github.com/muhammadchandra19/marketsim/internal/usecase/trade-publisher"
	"github.com/muhammadchandra19/marketsim/pkg/config"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/muhammadchandra19/marketsim/pkg/redis"
	"github.com/muhammadchandra19/marketsim/pkg/util"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(cfg.LogLevel))
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = util.WithSymbol(util.WithRunID(ctx, ""), cfg.Simulation.Symbol)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "Received shutdown signal", logger.Field{Key: "signal", Value: sig.String()})
		cancel()
	}()

	engineOptions := matching.DefaultEngineOptions()
	engineOptions.Latency = cfg.Engine.Latency
	engineOptions.ImpactDepthLevels = cfg.Engine.ImpactDepthLevels

	if cfg.Kafka.Enabled() {
		tradePublisher := tradepublisher.NewPublisher(cfg.Kafka, log)
		defer func() {
			if err := tradePublisher.Close(); err != nil {
				log.Error(err, logger.Field{Key: "action", Value: "close_trade_publisher"})
			}
		}()
		engineOptions.Publisher = tradePublisher
	}

	runnerOptions := app.DefaultRunnerOptions()
	runnerOptions.ReportInterval = cfg.Simulation.ReportInterval

	if cfg.Redis.Enabled() {
		redisConfig := redis.DefaultConfig()
		redisConfig.Addrs = cfg.Redis.Addrs
		redisConfig.Password = cfg.Redis.Password
		redisConfig.Username = cfg.Redis.Username
		redisConfig.DB = cfg.Redis.DB
		if len(redisConfig.Addrs) > 1 {
			redisConfig.Mode = redis.Cluster
		}

		rclient := redis.NewClient(log, redisConfig)
		if err := rclient.Connect(ctx); err != nil {
			log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "connect_redis"})
			if !rclient.Reconnect(ctx) {
				return
			}
		}

		reportPublisher := reportpublisher.NewPublisher(rclient, cfg.Redis.Config, log)
		defer func() {
			if err := reportPublisher.Close(context.Background()); err != nil {
				log.Error(err, logger.Field{Key: "action", Value: "close_redis_client"})
			}
		}()
		runnerOptions.ReportPublisher = reportPublisher
	}

	// Initialize components
	book := orderbook.NewOrderbook(cfg.Simulation.Symbol)
	engine := matching.NewEngineWithOptions(book, log, engineOptions)

	sim, err := simulator.NewSimulator(cfg.Simulation.Config, engine, log)
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "create_simulator"})
		return
	}
	if err := sim.InitializeBook(ctx, cfg.Simulation.BookLevels, cfg.Simulation.Liquidity); err != nil {
		log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "initialize_book"})
		return
	}

	mm, err := strategy.NewMarketMaker(cfg.MarketMaker, engine, log)
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "create_market_maker"})
		return
	}

	runner := app.NewRunnerWithOptions(sim, engine, mm, log, runnerOptions)

	started := time.Now()
	result, err := runner.Run(ctx, cfg.Simulation.Steps)
	if err != nil {
		log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "run_simulation"})
	}
	if result == nil {
		return
	}

	if err := book.Validate(); err != nil {
		log.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "validate_book"})
	}

	stats := mm.Statistics(result.Equity.Price)
	engineStats := engine.GetStatistics()
	log.InfoContext(ctx, "Simulation summary",
		logger.Field{Key: "elapsed", Value: time.Since(started)},
		logger.Field{Key: "simulation", Value: result.Simulation},
		logger.Field{Key: "engineTrades", Value: engineStats.TotalTrades},
		logger.Field{Key: "avgSlippagePct", Value: engineStats.AvgSlippagePct},
		logger.Field{Key: "quoteUpdates", Value: stats.QuoteUpdates},
		logger.Field{Key: "tradesExecuted", Value: stats.TradesExecuted},
		logger.Field{Key: "totalPnL", Value: stats.PnL.TotalPnL},
		logger.Field{Key: "totalReturnPct", Value: stats.PnL.TotalReturnPct},
		logger.Field{Key: "winRatePct", Value: stats.PnL.WinRatePct},
		logger.Field{Key: "inventory", Value: stats.Inventory.CurrentInventory},
		logger.Field{Key: "inventoryBreaches", Value: stats.Inventory.Breaches},
	)
}
