package simulator

import "github.com/muhammadchandra19/marketsim/pkg/errors"

// Config holds the order flow parameters.
type Config struct {
	Symbol       string  `env:"SYMBOL" envDefault:"BTCUSDT"`
	InitialPrice float64 `env:"INITIAL_PRICE" envDefault:"50000"`
	// ArrivalRate is the Poisson intensity in orders per second.
	ArrivalRate float64 `env:"ARRIVAL_RATE" envDefault:"1"`
	SpreadBps   float64 `env:"SPREAD_BPS" envDefault:"10"`
	StepSeconds float64 `env:"STEP_SECONDS" envDefault:"0.1"`

	AggressiveRatio float64 `env:"AGGRESSIVE_RATIO" envDefault:"0.3"`
	BaseSize        float64 `env:"BASE_SIZE" envDefault:"0.1"`
	SizeSigma       float64 `env:"SIZE_SIGMA" envDefault:"0.5"`
	MinSize         float64 `env:"MIN_SIZE" envDefault:"0.01"`
	MaxSize         float64 `env:"MAX_SIZE" envDefault:"5"`

	Seed uint64 `env:"SEED" envDefault:"42"`
}

// DefaultConfig returns the default simulator parameters.
func DefaultConfig() Config {
	return Config{
		Symbol:          "BTCUSDT",
		InitialPrice:    50_000,
		ArrivalRate:     1,
		SpreadBps:       10,
		StepSeconds:     0.1,
		AggressiveRatio: 0.3,
		BaseSize:        0.1,
		SizeSigma:       0.5,
		MinSize:         0.01,
		MaxSize:         5,
		Seed:            42,
	}
}

// Validate checks the parameters.
func (c Config) Validate() error {
	switch {
	case c.InitialPrice <= 0:
		return errors.NewErrorDetails("initial price must be positive", string(errors.ErrInvalidConfiguration), "initialPrice")
	case c.ArrivalRate < 0:
		return errors.NewErrorDetails("arrival rate must not be negative", string(errors.ErrInvalidConfiguration), "arrivalRate")
	case c.SpreadBps <= 0:
		return errors.NewErrorDetails("spread must be positive", string(errors.ErrInvalidConfiguration), "spreadBps")
	case c.StepSeconds <= 0:
		return errors.NewErrorDetails("step must be positive", string(errors.ErrInvalidConfiguration), "stepSeconds")
	case c.AggressiveRatio < 0 || c.AggressiveRatio > 1:
		return errors.NewErrorDetails("aggressive ratio must be within [0, 1]", string(errors.ErrInvalidConfiguration), "aggressiveRatio")
	case c.BaseSize <= 0 || c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return errors.NewErrorDetails("size bounds are inconsistent", string(errors.ErrInvalidConfiguration), "size")
	}
	return nil
}
