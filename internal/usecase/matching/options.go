package matching

import (
	"time"

	tradepublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/trade-publisher/v1"
)

// Options represents configuration options for the Engine.
type Options struct {
	// Latency is annotated on every execution report. Matching is never delayed by it.
	Latency time.Duration
	// ImpactDepthLevels bounds how many contra levels EstimateImpact walks.
	ImpactDepthLevels int
	// Publisher receives the trades of every submission. Nil disables publishing.
	Publisher tradepublisherv1.TradePublisher
	Clock     func() time.Time
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		Latency:           time.Millisecond,
		ImpactDepthLevels: 20,
		Clock:             time.Now,
	}
}
