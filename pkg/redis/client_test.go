package redis

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "no addresses", mutate: func(c *Config) { c.Addrs = nil }, field: "addrs"},
		{name: "unknown mode", mutate: func(c *Config) { c.Mode = "sentinel" }, field: "mode"},
		{name: "zero timeout", mutate: func(c *Config) { c.ConnectTimeout = 0 }, field: "connectTimeout"},
		{name: "zero pool", mutate: func(c *Config) { c.PoolSize = 0 }, field: "poolSize"},
		{name: "inverted backoff", mutate: func(c *Config) { c.MaxRetryBackoff = time.Millisecond }, field: "retryBackoff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)

			field, ok := config.Validate()
			assert.False(t, ok)
			assert.Equal(t, tc.field, field)

			err := NewClient(nil, config).Connect(context.Background())
			assert.True(t, errors.ErrorCodeEquals(err, errors.RedisConfigError))
		})
	}

	_, ok := DefaultConfig().Validate()
	assert.True(t, ok)
}

func TestClient_NilConfig(t *testing.T) {
	err := NewClient(nil, nil).Connect(context.Background())
	assert.True(t, errors.ErrorCodeEquals(err, errors.RedisConfigError))
}

func TestClient_NotConnected(t *testing.T) {
	ctx := context.Background()
	c := NewClient(nil, DefaultConfig())

	assert.True(t, errors.ErrorCodeEquals(c.Ping(ctx), errors.RedisPingError))
	assert.True(t, errors.ErrorCodeEquals(c.Disconnect(ctx), errors.RedisDisconnectionError))

	_, err := c.XAdd(ctx, nil)
	assert.True(t, errors.ErrorCodeEquals(err, errors.RedisXAddError))
	_, err = c.Publish(ctx, "channel", "message")
	assert.True(t, errors.ErrorCodeEquals(err, errors.RedisPublishError))
}

func TestClient_ReconnectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, NewClient(nil, DefaultConfig()).Reconnect(ctx))
}
