package redis

import "time"

// Mode represents the mode of the Redis client.
type Mode string

const (
	// Standalone Mode is for a single Redis instance.
	Standalone Mode = "standalone"
	// Cluster Mode is for a Redis cluster setup.
	Cluster Mode = "cluster"
)

// Config holds the configuration for the Redis client.
type Config struct {
	Mode     Mode   `env:"MODE" envDefault:"standalone"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	Addrs []string `env:"ADDRS" envDefault:"localhost:6379"`

	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"3"`
	MinRetryBackoff time.Duration `env:"MIN_RETRY_BACKOFF" envDefault:"100ms"`
	MaxRetryBackoff time.Duration `env:"MAX_RETRY_BACKOFF" envDefault:"2s"`
	PoolSize        int           `env:"POOL_SIZE" envDefault:"4"`
	MinIdleConns    int           `env:"MIN_IDLE_CONNS" envDefault:"1"`
	PoolTimeout     time.Duration `env:"POOL_TIMEOUT" envDefault:"4s"`

	// ReconnectMaxRetries bounds Reconnect attempts.
	ReconnectMaxRetries int `env:"RECONNECT_MAX_RETRIES" envDefault:"3"`
}

// DefaultConfig returns a default configuration for the Redis client.
func DefaultConfig() *Config {
	return &Config{
		Mode:                Standalone,
		Addrs:               []string{"localhost:6379"},
		ConnectTimeout:      5 * time.Second,
		MaxRetries:          3,
		MinRetryBackoff:     100 * time.Millisecond,
		MaxRetryBackoff:     2 * time.Second,
		PoolSize:            4,
		MinIdleConns:        1,
		PoolTimeout:         4 * time.Second,
		ReconnectMaxRetries: 3,
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() (field string, ok bool) {
	switch {
	case len(c.Addrs) == 0:
		return "addrs", false
	case c.Mode != Standalone && c.Mode != Cluster:
		return "mode", false
	case c.ConnectTimeout <= 0:
		return "connectTimeout", false
	case c.PoolSize <= 0:
		return "poolSize", false
	case c.MinIdleConns < 0:
		return "minIdleConns", false
	case c.PoolTimeout <= 0:
		return "poolTimeout", false
	case c.MaxRetries < 0:
		return "maxRetries", false
	case c.MinRetryBackoff < 0 || c.MaxRetryBackoff < c.MinRetryBackoff:
		return "retryBackoff", false
	}
	return "", true
}
