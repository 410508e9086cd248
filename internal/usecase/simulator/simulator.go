package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	pricePlaces      = 2
	sizePlaces       = 4
	maxAggressionPct = 0.001
	passiveTicks     = 5
)

// OrderParams describes one generated order.
type OrderParams struct {
	Side         orderbookv1.Side `json:"side"`
	Price        float64          `json:"price"`
	Quantity     float64          `json:"quantity"`
	IsAggressive bool             `json:"isAggressive"`
}

// OrderEvent records a submitted order.
type OrderEvent struct {
	Time     float64 `json:"time"`
	TraderID string  `json:"traderID"`
	OrderParams
	Filled float64 `json:"filled"`
}

// PricePoint records the top of book after a step.
type PricePoint struct {
	Time     float64 `json:"time"`
	MidPrice float64 `json:"midPrice"`
	BestBid  float64 `json:"bestBid"`
	BestAsk  float64 `json:"bestAsk"`
	Spread   float64 `json:"spread"`
	// HasSpread is false when one side of the book was empty.
	HasSpread bool `json:"hasSpread"`
}

// Summary aggregates a simulation run.
type Summary struct {
	TotalOrders      int     `json:"totalOrders"`
	TotalTrades      int     `json:"totalTrades"`
	TotalVolume      float64 `json:"totalVolume"`
	AvgSpread        float64 `json:"avgSpread"`
	PriceVolatility  float64 `json:"priceVolatility"`
	FinalPrice       float64 `json:"finalPrice"`
	PriceChange      float64 `json:"priceChange"`
	AggressiveOrders int     `json:"aggressiveOrders"`
}

// Simulator generates Poisson order flow from anonymous traders against a
// matching engine. Every random draw comes from one seeded source.
type Simulator struct {
	config Config
	engine orderbookv1.MatchingEngine
	logger *logger.Logger
	rng    *rand.Rand

	currentPrice  float64
	simTime       float64
	traderCounter int

	orderHistory []OrderEvent
	priceHistory []PricePoint
}

// NewSimulator creates a simulator over engine.
func NewSimulator(config Config, engine orderbookv1.MatchingEngine, log *logger.Logger) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Simulator{
		config:       config,
		engine:       engine,
		logger:       log,
		rng:          rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
		currentPrice: config.InitialPrice,
	}, nil
}

// InitializeBook seeds levels price levels per side around the current
// price, spaced by half the configured spread, each with liquidity +-20%.
func (s *Simulator) InitializeBook(ctx context.Context, levels int, liquidity float64) error {
	if levels <= 0 || liquidity <= 0 {
		return errors.NewErrorDetails("levels and liquidity must be positive", string(errors.ErrInvalidConfiguration), "levels")
	}

	spread := s.currentPrice * s.config.SpreadBps / 10_000
	tick := spread / 2
	bid := s.currentPrice - spread/2
	ask := s.currentPrice + spread/2

	for i := 0; i < levels; i++ {
		price := roundTo(bid-float64(i)*tick, pricePlaces)
		if price <= 0 {
			break
		}
		if _, err := s.engine.SubmitLimitOrder(ctx, fmt.Sprintf("MM_BID_%d", i), orderbookv1.SideBuy, price, s.seedQuantity(liquidity)); err != nil {
			return err
		}
	}
	for i := 0; i < levels; i++ {
		price := roundTo(ask+float64(i)*tick, pricePlaces)
		if _, err := s.engine.SubmitLimitOrder(ctx, fmt.Sprintf("MM_ASK_%d", i), orderbookv1.SideSell, price, s.seedQuantity(liquidity)); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "Order book initialized",
		logger.Field{Key: "symbol", Value: s.config.Symbol},
		logger.Field{Key: "levels", Value: levels},
		logger.Field{Key: "midPrice", Value: s.currentPrice},
	)
	return nil
}

func (s *Simulator) seedQuantity(liquidity float64) float64 {
	return roundTo(liquidity*(1+s.uniform(-0.2, 0.2)), sizePlaces)
}

// GenerateOrder draws one order. Aggressive orders cross the spread by up to
// 0.1%; passive orders join behind the top of book by 0 to 4 one-bp ticks.
func (s *Simulator) GenerateOrder() OrderParams {
	side := orderbookv1.SideSell
	if s.rng.Float64() < 0.5 {
		side = orderbookv1.SideBuy
	}
	aggressive := s.rng.Float64() < s.config.AggressiveRatio

	book := s.engine.Orderbook()
	bestBid, ok := book.BestBid()
	if !ok {
		bestBid = s.currentPrice
	}
	bestAsk, ok := book.BestAsk()
	if !ok {
		bestAsk = s.currentPrice
	}
	mid := (bestBid + bestAsk) / 2

	size := math.Exp(math.Log(s.config.BaseSize) + s.config.SizeSigma*s.rng.NormFloat64())
	size = math.Max(s.config.MinSize, math.Min(size, s.config.MaxSize))

	var price float64
	switch {
	case aggressive && side == orderbookv1.SideBuy:
		price = bestAsk * (1 + s.uniform(0, maxAggressionPct))
	case aggressive:
		price = bestBid * (1 - s.uniform(0, maxAggressionPct))
	default:
		offset := float64(s.rng.IntN(passiveTicks)) * mid * 0.0001
		if side == orderbookv1.SideBuy {
			price = bestBid - offset
		} else {
			price = bestAsk + offset
		}
	}

	return OrderParams{
		Side:         side,
		Price:        math.Max(roundTo(price, pricePlaces), math.Pow10(-pricePlaces)),
		Quantity:     math.Max(roundTo(size, sizePlaces), s.config.MinSize),
		IsAggressive: aggressive,
	}
}

// Step advances the clock by one step. With probability 1-exp(-rate*dt) an
// order arrives from a new trader. The top of book is recorded either way.
func (s *Simulator) Step(ctx context.Context) (*orderbookv1.ExecutionReport, error) {
	var report *orderbookv1.ExecutionReport

	if s.rng.Float64() < 1-math.Exp(-s.config.ArrivalRate*s.config.StepSeconds) {
		params := s.GenerateOrder()
		s.traderCounter++
		traderID := fmt.Sprintf("TRADER_%d", s.traderCounter)

		var err error
		report, err = s.engine.SubmitLimitOrder(ctx, traderID, params.Side, params.Price, params.Quantity)
		if err != nil {
			return nil, err
		}

		s.orderHistory = append(s.orderHistory, OrderEvent{
			Time:        s.simTime,
			TraderID:    traderID,
			OrderParams: params,
			Filled:      report.FilledQuantity,
		})
		if report.FilledQuantity > 0 {
			s.currentPrice = report.AvgPrice
		}
	}

	s.simTime += s.config.StepSeconds
	s.recordPrice()
	return report, nil
}

// Simulate runs steps steps and returns the reports of the orders that arrived.
func (s *Simulator) Simulate(ctx context.Context, steps int) ([]*orderbookv1.ExecutionReport, error) {
	var reports []*orderbookv1.ExecutionReport
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := s.Step(ctx)
		if err != nil {
			return reports, err
		}
		if report != nil {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

func (s *Simulator) recordPrice() {
	book := s.engine.Orderbook()
	point := PricePoint{Time: s.simTime, MidPrice: s.currentPrice}
	point.BestBid, _ = book.BestBid()
	point.BestAsk, _ = book.BestAsk()
	if mid, ok := book.MidPrice(); ok {
		point.MidPrice = mid
	}
	point.Spread, point.HasSpread = book.Spread()
	s.priceHistory = append(s.priceHistory, point)
}

// CurrentPrice returns the last traded average price, or the initial price.
func (s *Simulator) CurrentPrice() float64 {
	return s.currentPrice
}

// Time returns the simulated seconds elapsed.
func (s *Simulator) Time() float64 {
	return s.simTime
}

// OrderHistory returns a copy of the generated orders.
func (s *Simulator) OrderHistory() []OrderEvent {
	return append([]OrderEvent(nil), s.orderHistory...)
}

// PriceHistory returns a copy of the per-step top of book.
func (s *Simulator) PriceHistory() []PricePoint {
	return append([]PricePoint(nil), s.priceHistory...)
}

// Summary aggregates the run. The zero Summary is returned before the first step.
func (s *Simulator) Summary() Summary {
	if len(s.priceHistory) == 0 {
		return Summary{}
	}

	book := s.engine.Orderbook()
	summary := Summary{
		TotalOrders: len(s.orderHistory),
		TotalTrades: book.TradeCount(),
		TotalVolume: book.TotalVolume(),
		FinalPrice:  s.priceHistory[len(s.priceHistory)-1].MidPrice,
	}
	summary.PriceChange = summary.FinalPrice - s.priceHistory[0].MidPrice

	spreadSum, spreadCount, midSum := 0.0, 0, 0.0
	for _, p := range s.priceHistory {
		if p.HasSpread {
			spreadSum += p.Spread
			spreadCount++
		}
		midSum += p.MidPrice
	}
	if spreadCount > 0 {
		summary.AvgSpread = spreadSum / float64(spreadCount)
	}

	if n := len(s.priceHistory); n > 1 {
		mean := midSum / float64(n)
		variance := 0.0
		for _, p := range s.priceHistory {
			variance += (p.MidPrice - mean) * (p.MidPrice - mean)
		}
		summary.PriceVolatility = math.Sqrt(variance / float64(n-1))
	}

	for _, o := range s.orderHistory {
		if o.IsAggressive {
			summary.AggressiveOrders++
		}
	}
	return summary
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
