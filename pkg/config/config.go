package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	reportpublisher "github.com/muhammadchandra19/marketsim/internal/usecase/report-publisher"
	"github.com/muhammadchandra19/marketsim/internal/usecase/simulator"
	"github.com/muhammadchandra19/marketsim/internal/usecase/strategy"
	tradepublisher "github.com/muhammadchandra19/marketsim/internal/usecase/trade-publisher"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load()

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and an optional
// .env file in the working directory.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return env.Parse(cfg)
}

// Config holds the configuration for the simulator binary.
type Config struct {
	LogLevel logger.Level `env:"LOG_LEVEL" envDefault:"info"`

	Simulation  SimulationConfig           `envPrefix:"SIM_"`
	Engine      EngineConfig               `envPrefix:"ENGINE_"`
	MarketMaker strategy.MarketMakerConfig `envPrefix:"MM_"`
	Kafka       tradepublisher.Config      `envPrefix:"KAFKA_"`
	Redis       RedisConfig                `envPrefix:"REDIS_"`
}

// SimulationConfig holds the order flow and run length settings.
type SimulationConfig struct {
	simulator.Config

	Steps      int     `env:"STEPS" envDefault:"1000"`
	BookLevels int     `env:"BOOK_LEVELS" envDefault:"10"`
	Liquidity  float64 `env:"LIQUIDITY" envDefault:"1.0"`
	// ReportInterval is the number of steps between equity records.
	ReportInterval int `env:"REPORT_INTERVAL" envDefault:"100"`
}

// EngineConfig holds the matching engine settings.
type EngineConfig struct {
	Latency           time.Duration `env:"LATENCY" envDefault:"1ms"`
	ImpactDepthLevels int           `env:"IMPACT_DEPTH_LEVELS" envDefault:"20"`
}

// RedisConfig holds the connection and stream settings for equity reporting.
type RedisConfig struct {
	Addrs    []string `env:"ADDRS"`
	Password string   `env:"PASSWORD" envDefault:""`
	Username string   `env:"USERNAME" envDefault:""`
	DB       int      `env:"DB" envDefault:"0"`

	reportpublisher.Config
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return len(c.Addrs) > 0
}
