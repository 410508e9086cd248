package matching

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	tradepublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/trade-publisher/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
)

// Engine submits orders into an order book and derives execution reports,
// slippage statistics and impact estimates from the resulting trades.
type Engine struct {
	orderbook orderbookv1.Orderbook
	publisher tradepublisherv1.TradePublisher
	logger    *logger.Logger

	latency           time.Duration
	impactDepthLevels int
	now               func() time.Time

	mu            sync.RWMutex
	totalTrades   int64
	totalVolume   float64
	totalSlippage float64
}

var _ orderbookv1.MatchingEngine = (*Engine)(nil)

// impactEpsilon absorbs float residue when summing level quantities.
const impactEpsilon = 1e-9

// Statistics is a point-in-time view of the engine counters.
type Statistics struct {
	TotalTrades    int64         `json:"totalTrades"`
	TotalVolume    float64       `json:"totalVolume"`
	AvgSlippagePct float64       `json:"avgSlippagePct"`
	Latency        time.Duration `json:"latency"`
}

// NewEngine creates a new Engine with the default options.
func NewEngine(orderbook orderbookv1.Orderbook, log *logger.Logger) *Engine {
	return NewEngineWithOptions(orderbook, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new Engine with custom options.
func NewEngineWithOptions(orderbook orderbookv1.Orderbook, log *logger.Logger, options *Options) *Engine {
	defaults := DefaultEngineOptions()
	if options == nil {
		options = defaults
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	e := &Engine{
		orderbook:         orderbook,
		publisher:         options.Publisher,
		logger:            log,
		latency:           options.Latency,
		impactDepthLevels: options.ImpactDepthLevels,
		now:               options.Clock,
	}
	if e.impactDepthLevels <= 0 {
		e.impactDepthLevels = defaults.ImpactDepthLevels
	}
	if e.now == nil {
		e.now = defaults.Clock
	}
	return e
}

// Orderbook returns the book the engine matches into.
func (e *Engine) Orderbook() orderbookv1.Orderbook {
	return e.orderbook
}

// Submit matches the order and wraps the result in an execution report.
// Validation failures are returned unchanged and leave the book untouched.
func (e *Engine) Submit(ctx context.Context, order *orderbookv1.Order) (*orderbookv1.ExecutionReport, error) {
	submissionTime := e.now()
	mid, hasMid := e.orderbook.MidPrice()

	trades, err := e.orderbook.Submit(order)
	if err != nil {
		return nil, err
	}

	report := &orderbookv1.ExecutionReport{
		OrderID:           order.ID,
		Status:            order.Status(),
		FilledQuantity:    order.Filled,
		RemainingQuantity: order.Remaining(),
		Trades:            trades,
		Rested:            order.IsResting(),
		Latency:           e.latency,
		SubmissionTime:    submissionTime,
		ArrivalTime:       submissionTime.Add(e.latency),
	}

	if len(trades) > 0 {
		filled, notional := 0.0, 0.0
		for _, trade := range trades {
			filled += trade.Quantity
			notional += trade.Notional()
		}
		report.AvgPrice = notional / filled
		report.ReferencePrice = report.AvgPrice
		if hasMid {
			report.ReferencePrice = mid
		}
		report.SlippagePct = math.Abs(report.AvgPrice-report.ReferencePrice) / report.ReferencePrice * 100

		e.mu.Lock()
		e.totalSlippage += report.SlippagePct
		e.totalTrades += int64(len(trades))
		e.totalVolume += filled
		e.mu.Unlock()

		e.publish(ctx, trades)
	}

	e.logger.DebugContext(ctx, "Order executed",
		logger.Field{Key: "orderID", Value: report.OrderID},
		logger.Field{Key: "userID", Value: order.UserID},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "status", Value: report.Status},
		logger.Field{Key: "filled", Value: report.FilledQuantity},
		logger.Field{Key: "numTrades", Value: report.NumTrades()},
	)

	return report, nil
}

// SubmitLimitOrder builds and submits a limit order.
func (e *Engine) SubmitLimitOrder(ctx context.Context, userID string, side orderbookv1.Side, price, quantity float64) (*orderbookv1.ExecutionReport, error) {
	order, err := orderbookv1.NewLimitOrder(userID, side, price, quantity)
	if err != nil {
		return nil, err
	}
	return e.Submit(ctx, order)
}

// SubmitMarketOrder builds and submits a market order.
func (e *Engine) SubmitMarketOrder(ctx context.Context, userID string, side orderbookv1.Side, quantity float64) (*orderbookv1.ExecutionReport, error) {
	order, err := orderbookv1.NewMarketOrder(userID, side, quantity)
	if err != nil {
		return nil, err
	}
	return e.Submit(ctx, order)
}

// Cancel removes a resting order. It returns false for unknown or terminal ids.
func (e *Engine) Cancel(ctx context.Context, orderID string) bool {
	ok := e.orderbook.Cancel(orderID)
	if !ok {
		e.logger.DebugContext(ctx, "Cancel rejected", logger.Field{Key: "orderID", Value: orderID})
	}
	return ok
}

// EstimateImpact walks the contra side without mutating it. Only the first
// Options.ImpactDepthLevels levels are walked, so liquidity beyond them is
// ignored. When those levels run out the partial report is returned together
// with an insufficient volume error.
func (e *Engine) EstimateImpact(side orderbookv1.Side, quantity float64) (orderbookv1.ImpactReport, error) {
	report := orderbookv1.ImpactReport{Side: side, Quantity: quantity}
	if !side.IsValid() {
		return report, errors.NewErrorDetails("order side must be BUY or SELL", string(errors.ErrInvalidOrderSide), "side")
	}
	if !orderbookv1.PositiveFinite(quantity) {
		return report, errors.NewErrorDetails("order quantity must be positive", string(errors.ErrInvalidOrderSize), "quantity")
	}

	depth := e.orderbook.Depth(e.impactDepthLevels)
	levels, code := depth.Asks, errors.ErrInsufficientAskVolume
	if side == orderbookv1.SideSell {
		levels, code = depth.Bids, errors.ErrInsufficientBidVolume
	}

	remaining := quantity
	for _, level := range levels {
		if remaining <= impactEpsilon {
			remaining = 0
			break
		}
		fillable := math.Min(remaining, level.Quantity)
		report.TotalCost += level.Price * fillable
		remaining -= fillable
		report.LevelsConsumed++
	}

	if remaining <= impactEpsilon {
		remaining = 0
	}
	if len(levels) == 0 || remaining > 0 {
		report.Shortfall = remaining
		return report, errors.NewErrorDetailsWithObject(
			fmt.Sprintf("insufficient liquidity, need %.4f more", remaining),
			string(code), "quantity", report)
	}

	report.ReferencePrice = levels[0].Price
	report.AvgPrice = report.TotalCost / quantity
	report.ImpactPct = math.Abs(report.AvgPrice-report.ReferencePrice) / report.ReferencePrice * 100
	return report, nil
}

// GetStatistics returns the engine counters.
func (e *Engine) GetStatistics() Statistics {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Statistics{
		TotalTrades:    e.totalTrades,
		TotalVolume:    e.totalVolume,
		AvgSlippagePct: e.totalSlippage / math.Max(float64(e.totalTrades), 1),
		Latency:        e.latency,
	}
}

// publish forwards trades to the configured publisher. Failures are logged
// and never affect the match that already happened.
func (e *Engine) publish(ctx context.Context, trades []orderbookv1.Trade) {
	if e.publisher == nil {
		return
	}

	events := make([]*tradepublisherv1.TradeEvent, 0, len(trades))
	for _, trade := range trades {
		events = append(events, tradepublisherv1.CreateFromTrade(e.orderbook.Symbol(), trade))
	}

	if err := e.publisher.PublishTrades(ctx, events...); err != nil {
		e.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "publish_trades"},
			logger.Field{Key: "count", Value: len(events)},
		)
	}
}
