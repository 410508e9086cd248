package strategy

import (
	"context"
	stderrors "errors"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	strategyv1 "github.com/muhammadchandra19/marketsim/internal/domain/strategy/v1"
	"github.com/muhammadchandra19/marketsim/internal/usecase/inventory"
	"github.com/muhammadchandra19/marketsim/internal/usecase/pnl"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
)

// MarketMakerConfig holds the market maker parameters.
type MarketMakerConfig struct {
	Name            string  `env:"NAME" envDefault:"MarketMaker"`
	SpreadBps       float64 `env:"SPREAD_BPS" envDefault:"10"`
	OrderSize       float64 `env:"ORDER_SIZE" envDefault:"0.1"`
	MaxInventory    float64 `env:"MAX_INVENTORY" envDefault:"5"`
	TargetInventory float64 `env:"TARGET_INVENTORY" envDefault:"0"`
	RiskAversion    float64 `env:"RISK_AVERSION" envDefault:"0.01"`
	InitialCash     float64 `env:"INITIAL_CASH" envDefault:"100000"`
	FeeBps          float64 `env:"FEE_BPS" envDefault:"0"`
	// TickSize rounds bids down and asks up. Zero disables rounding.
	TickSize float64 `env:"TICK_SIZE" envDefault:"0.01"`
}

// DefaultMarketMakerConfig returns the default market maker parameters.
func DefaultMarketMakerConfig() MarketMakerConfig {
	return MarketMakerConfig{
		Name:         "MarketMaker",
		SpreadBps:    10,
		OrderSize:    0.1,
		MaxInventory: 5,
		RiskAversion: 0.01,
		InitialCash:  100_000,
		TickSize:     0.01,
	}
}

// MarketMakerStatistics composes strategy, PnL and inventory statistics.
type MarketMakerStatistics struct {
	BaseStatistics
	PnL            pnl.Statistics    `json:"pnl"`
	Inventory      inventory.Metrics `json:"inventory"`
	QuoteUpdates   int               `json:"quoteUpdates"`
	TradesExecuted int               `json:"tradesExecuted"`
}

// MarketMaker quotes both sides around mid, skewed by inventory, and
// re-quotes on every market update.
type MarketMaker struct {
	*Base
	config    MarketMakerConfig
	inventory *inventory.Manager
	pnl       *pnl.Tracker

	activeBid string
	activeAsk string

	quoteUpdates   int
	tradesExecuted int
}

var _ strategyv1.Strategy = (*MarketMaker)(nil)

// NewMarketMaker creates a stopped market maker.
func NewMarketMaker(config MarketMakerConfig, engine orderbookv1.MatchingEngine, log *logger.Logger) (*MarketMaker, error) {
	if config.Name == "" {
		return nil, errors.NewErrorDetails("strategy name is required", string(errors.ErrInvalidConfiguration), "name")
	}
	if config.SpreadBps <= 0 {
		return nil, errors.NewErrorDetails("spread must be positive", string(errors.ErrInvalidConfiguration), "spreadBps")
	}
	if config.OrderSize <= 0 {
		return nil, errors.NewErrorDetails("order size must be positive", string(errors.ErrInvalidConfiguration), "orderSize")
	}
	if config.FeeBps < 0 || config.TickSize < 0 {
		return nil, errors.NewErrorDetails("fee and tick size must not be negative", string(errors.ErrInvalidConfiguration), "feeBps")
	}

	inv, err := inventory.NewManager(inventory.Config{
		TargetInventory: config.TargetInventory,
		MaxInventory:    config.MaxInventory,
		RiskAversion:    config.RiskAversion,
	})
	if err != nil {
		return nil, err
	}

	return &MarketMaker{
		Base:      NewBase(config.Name, engine, log),
		config:    config,
		inventory: inv,
		pnl:       pnl.NewTracker(config.InitialCash, 0),
	}, nil
}

// OnMarketUpdate cancels the current quotes and places new skewed ones.
// Nothing happens while stopped or when the book has no mid price.
func (m *MarketMaker) OnMarketUpdate(ctx context.Context, snapshot strategyv1.MarketSnapshot) error {
	if !m.IsRunning() || !snapshot.HasMid() || !orderbookv1.PositiveFinite(snapshot.MidPrice) {
		return nil
	}
	mid := snapshot.MidPrice

	baseSpread := mid * m.config.SpreadBps / 10_000
	quote := m.inventory.QuotePrices(mid, baseSpread)
	bidSize := m.inventory.QuoteSize(orderbookv1.SideBuy, m.config.OrderSize)
	askSize := m.inventory.QuoteSize(orderbookv1.SideSell, m.config.OrderSize)

	m.cancelActiveQuotes(ctx)

	bid := floorToTick(quote.Bid, m.config.TickSize)
	ask := ceilToTick(quote.Ask, m.config.TickSize)
	if bid >= ask {
		step := m.config.TickSize
		if step <= 0 {
			step = baseSpread
		}
		ask = bid + step
	}

	var errs []error
	if bidSize > 0 && bid > 0 && m.inventory.MayQuote(orderbookv1.SideBuy) {
		id, err := m.place(ctx, orderbookv1.SideBuy, bid, bidSize)
		m.activeBid = id
		errs = append(errs, err)
	}
	if askSize > 0 && m.inventory.MayQuote(orderbookv1.SideSell) {
		id, err := m.place(ctx, orderbookv1.SideSell, ask, askSize)
		m.activeAsk = id
		errs = append(errs, err)
	}

	m.quoteUpdates++
	m.pnl.Mark(mid)

	return stderrors.Join(errs...)
}

// place submits a quote and returns its id when it rests.
func (m *MarketMaker) place(ctx context.Context, side orderbookv1.Side, price, size float64) (string, error) {
	report, err := m.SubmitOrder(ctx, side, price, size)
	if err != nil {
		m.logger.WarnContext(ctx, "Quote rejected",
			logger.Field{Key: "side", Value: side},
			logger.Field{Key: "price", Value: price},
			logger.Field{Key: "size", Value: size},
			logger.Field{Key: "error", Value: err.Error()},
		)
		return "", err
	}
	if !report.Rested {
		return "", nil
	}
	return report.OrderID, nil
}

func (m *MarketMaker) cancelActiveQuotes(ctx context.Context) {
	if m.activeBid != "" {
		m.CancelOrder(ctx, m.activeBid)
		m.activeBid = ""
	}
	if m.activeAsk != "" {
		m.CancelOrder(ctx, m.activeAsk)
		m.activeAsk = ""
	}
}

// OnTrade books a trade into PnL and inventory for every side the market
// maker is on. A self-trade is booked as both a buy and a sell.
func (m *MarketMaker) OnTrade(ctx context.Context, trade orderbookv1.Trade) error {
	if !trade.Involves(m.Name()) {
		return nil
	}

	fee := feeFor(trade.Price, trade.Quantity, m.config.FeeBps)
	if trade.BuyerID == m.Name() {
		if err := m.pnl.RecordBuy(trade.Price, trade.Quantity, fee); err != nil {
			return err
		}
		m.inventory.RecordFill(trade.Quantity, trade.Price)
		m.tradesExecuted++
	}
	if trade.SellerID == m.Name() {
		if err := m.pnl.RecordSell(trade.Price, trade.Quantity, fee); err != nil {
			return err
		}
		m.inventory.RecordFill(-trade.Quantity, trade.Price)
		m.tradesExecuted++
	}

	m.recordTrade(trade)
	for _, id := range []string{trade.BuyOrderID, trade.SellOrderID} {
		if order, ok := m.OwnOrder(id); ok {
			m.OnOrderFilled(ctx, order, trade.Price, trade.Quantity)
		}
	}
	return nil
}

// OnOrderFilled counts fills of the market maker's own orders.
func (m *MarketMaker) OnOrderFilled(ctx context.Context, order *orderbookv1.Order, fillPrice, fillQuantity float64) {
	m.recordFill()
	m.logger.DebugContext(ctx, "Quote filled",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "price", Value: fillPrice},
		logger.Field{Key: "quantity", Value: fillQuantity},
		logger.Field{Key: "status", Value: order.Status()},
	)
}

// Stop cancels the quotes and stops the strategy.
func (m *MarketMaker) Stop(ctx context.Context) error {
	if err := m.Base.Stop(ctx); err != nil {
		return err
	}
	m.activeBid, m.activeAsk = "", ""
	return nil
}

// Inventory returns the inventory manager.
func (m *MarketMaker) Inventory() *inventory.Manager {
	return m.inventory
}

// PnL returns the PnL tracker.
func (m *MarketMaker) PnL() *pnl.Tracker {
	return m.pnl
}

// Statistics composes every statistic at price. It does not mark the PnL history.
func (m *MarketMaker) Statistics(price float64) MarketMakerStatistics {
	return MarketMakerStatistics{
		BaseStatistics: m.Base.Statistics(),
		PnL:            m.pnl.Statistics(price),
		Inventory:      m.inventory.Metrics(),
		QuoteUpdates:   m.quoteUpdates,
		TradesExecuted: m.tradesExecuted,
	}
}
