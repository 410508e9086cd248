package simulation

import (
	"time"

	reportpublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/report-publisher/v1"
)

// Options holds configuration options for the runner.
type Options struct {
	// ReportInterval is the number of steps between equity records. Zero disables them.
	ReportInterval int
	// DepthLevels is the depth handed to the strategy on every market update.
	DepthLevels int
	// ReportPublisher receives equity records. Nil keeps them in memory only.
	ReportPublisher reportpublisherv1.ReportPublisher
	Clock           func() time.Time
}

// DefaultRunnerOptions returns the default runner options.
func DefaultRunnerOptions() *Options {
	return &Options{
		ReportInterval: 100,
		DepthLevels:    10,
		Clock:          time.Now,
	}
}
