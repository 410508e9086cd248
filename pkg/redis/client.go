package redis

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger *logger.Logger
	config *Config
	rdb    redis.UniversalClient
}

// NewClient creates a new Redis client with the provided logger and configuration.
// No connection is made until Connect.
func NewClient(log *logger.Logger, config *Config) Client {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &client{
		logger: log,
		config: config,
	}
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}
	if field, ok := c.config.Validate(); !ok {
		return errors.NewErrorDetails("Invalid Redis configuration", string(errors.RedisConfigError), field)
	}

	switch c.config.Mode {
	case Standalone:
		c.rdb = redis.NewClient(&redis.Options{
			Addr:            c.config.Addrs[0],
			Username:        c.config.Username,
			Password:        c.config.Password,
			DB:              c.config.DB,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			PoolTimeout:     c.config.PoolTimeout,
		})
	case Cluster:
		c.rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           c.config.Addrs,
			Username:        c.config.Username,
			Password:        c.config.Password,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			PoolTimeout:     c.config.PoolTimeout,
		})
	}

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.NewTracer(string(errors.RedisConnectionError)).Wrap(err)
	}
	return nil
}

// Reconnect retries Connect with exponential backoff plus jitter. It reports
// whether a connection was established.
func (c *client) Reconnect(ctx context.Context) bool {
	baseDelay := c.config.MinRetryBackoff
	maxDelay := c.config.MaxRetryBackoff

	for i := range c.config.ReconnectMaxRetries {
		backoff := min(baseDelay*time.Duration(math.Pow(2, float64(i))), maxDelay)
		totalDelay := backoff + time.Duration(rand.IntN(250))*time.Millisecond

		c.logger.InfoContext(ctx, "Reconnecting to Redis",
			logger.Field{Key: "attempt", Value: i + 1},
			logger.Field{Key: "delay", Value: totalDelay},
		)

		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "Reconnect cancelled", logger.Field{Key: "reason", Value: ctx.Err()})
			return false
		case <-time.After(totalDelay):
			connectCtx, cancel := context.WithTimeout(ctx, c.config.ConnectTimeout)
			err := c.Connect(connectCtx)
			cancel()
			if err == nil {
				c.logger.InfoContext(ctx, "Reconnected to Redis", logger.Field{Key: "attempt", Value: i + 1})
				return true
			}
			c.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{Key: "attempt", Value: i + 1})
		}
	}

	return false
}

func (c *client) Disconnect(_ context.Context) error {
	if c.rdb == nil {
		return errors.NewErrorDetails("Redis is not connected", string(errors.RedisDisconnectionError), "disconnect")
	}
	if err := c.rdb.Close(); err != nil {
		return errors.NewTracer(string(errors.RedisDisconnectionError)).Wrap(err)
	}
	c.rdb = nil
	return nil
}

func (c *client) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return errors.NewErrorDetails("Redis is not connected", string(errors.RedisPingError), "ping")
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

func (c *client) Publish(ctx context.Context, channel string, message any) (int64, error) {
	if c.rdb == nil {
		return 0, errors.NewErrorDetails("Redis is not connected", string(errors.RedisPublishError), "publish")
	}
	receivers, err := c.rdb.Publish(ctx, channel, message).Result()
	if err != nil {
		return 0, errors.NewTracer(string(errors.RedisPublishError)).Wrap(err)
	}
	return receivers, nil
}

func (c *client) XAdd(ctx context.Context, args *redis.XAddArgs) (string, error) {
	if c.rdb == nil {
		return "", errors.NewErrorDetails("Redis is not connected", string(errors.RedisXAddError), "xadd")
	}
	streamID, err := c.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", errors.NewTracer(string(errors.RedisXAddError)).Wrap(err)
	}
	return streamID, nil
}
