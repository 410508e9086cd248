package inventory

import (
	"math"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
)

const (
	minSizeMultiplier = 0.1
	// DefaultNeutralThreshold is the deviation below which inventory counts as neutral.
	DefaultNeutralThreshold = 0.1
)

// Config holds the inventory risk parameters.
type Config struct {
	TargetInventory float64 `env:"TARGET_INVENTORY" envDefault:"0"`
	MaxInventory    float64 `env:"MAX_INVENTORY" envDefault:"10"`
	RiskAversion    float64 `env:"RISK_AVERSION" envDefault:"0.01"`
}

// DefaultConfig returns the default inventory parameters.
func DefaultConfig() Config {
	return Config{
		TargetInventory: 0,
		MaxInventory:    10,
		RiskAversion:    0.01,
	}
}

// Quote is a pair of skewed quote prices.
type Quote struct {
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Spread float64 `json:"spread"`
	Skew   float64 `json:"skew"`
}

// Metrics is a point-in-time view of the inventory state.
type Metrics struct {
	CurrentInventory    float64 `json:"currentInventory"`
	TargetInventory     float64 `json:"targetInventory"`
	MaxInventory        float64 `json:"maxInventory"`
	UtilizationPct      float64 `json:"utilizationPct"` // signed, current/max*100
	InventoryValue      float64 `json:"inventoryValue"`
	IsNeutral           bool    `json:"isNeutral"`
	Skew                float64 `json:"skew"`
	MaxInventoryReached float64 `json:"maxInventoryReached"`
	Breaches            int     `json:"breaches"`
}

// Manager tracks one signed position against a symmetric cap and turns it
// into quote skew, per-side eligibility and size throttling.
type Manager struct {
	config Config

	current             float64
	value               float64
	maxInventoryReached float64
	breaches            int
}

// NewManager creates a Manager positioned at the target inventory.
func NewManager(config Config) (*Manager, error) {
	if config.MaxInventory <= 0 {
		return nil, errors.NewErrorDetails("max inventory must be positive", string(errors.ErrInvalidConfiguration), "maxInventory")
	}
	if config.RiskAversion < 0 {
		return nil, errors.NewErrorDetails("risk aversion must not be negative", string(errors.ErrInvalidConfiguration), "riskAversion")
	}
	return &Manager{
		config:  config,
		current: config.TargetInventory,
	}, nil
}

// RecordFill applies a signed inventory delta executed at price.
func (m *Manager) RecordFill(quantity, price float64) {
	m.current += quantity
	m.value = m.current * price

	abs := math.Abs(m.current)
	if abs > m.maxInventoryReached {
		m.maxInventoryReached = abs
	}
	if abs > m.config.MaxInventory {
		m.breaches++
	}
}

// Inventory returns the current signed position.
func (m *Manager) Inventory() float64 {
	return m.current
}

// Skew returns (current - target) * risk aversion. Positive when long.
func (m *Manager) Skew() float64 {
	return (m.current - m.config.TargetInventory) * m.config.RiskAversion
}

// QuotePrices returns bid and ask around mid. Being long tightens the bid
// and widens the ask; being short does the reverse.
func (m *Manager) QuotePrices(mid, baseSpread float64) Quote {
	skew := m.Skew()
	half := baseSpread / 2

	q := Quote{
		Bid:  mid - half - skew,
		Ask:  mid + half + skew,
		Skew: skew,
	}
	q.Spread = q.Ask - q.Bid
	return q
}

// MayQuote forbids BUY at or above +max and SELL at or below -max.
func (m *Manager) MayQuote(side orderbookv1.Side) bool {
	switch side {
	case orderbookv1.SideBuy:
		return m.current < m.config.MaxInventory
	case orderbookv1.SideSell:
		return m.current > -m.config.MaxInventory
	default:
		return false
	}
}

// QuoteSize shrinks baseSize as utilization grows and halves it again when
// quoting would add to an existing imbalance. The multiplier never drops
// below 0.1 while quoting is allowed.
func (m *Manager) QuoteSize(side orderbookv1.Side, baseSize float64) float64 {
	if !m.MayQuote(side) {
		return 0
	}

	utilization := math.Abs(m.current) / m.config.MaxInventory
	multiplier := 1 - utilization*0.5

	if side == orderbookv1.SideBuy && m.current > m.config.TargetInventory ||
		side == orderbookv1.SideSell && m.current < m.config.TargetInventory {
		multiplier *= 0.5
	}

	return baseSize * math.Max(minSizeMultiplier, multiplier)
}

// IsNeutral reports whether |current - target| < threshold.
func (m *Manager) IsNeutral(threshold float64) bool {
	return math.Abs(m.current-m.config.TargetInventory) < threshold
}

// Metrics returns the inventory metrics.
func (m *Manager) Metrics() Metrics {
	return Metrics{
		CurrentInventory:    m.current,
		TargetInventory:     m.config.TargetInventory,
		MaxInventory:        m.config.MaxInventory,
		UtilizationPct:      m.current / m.config.MaxInventory * 100,
		InventoryValue:      m.value,
		IsNeutral:           m.IsNeutral(DefaultNeutralThreshold),
		Skew:                m.Skew(),
		MaxInventoryReached: m.maxInventoryReached,
		Breaches:            m.breaches,
	}
}
