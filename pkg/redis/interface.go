package redis

import (
	"context"

	v9 "github.com/redis/go-redis/v9"
)

// Client defines the interface for a Redis client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	Publish(ctx context.Context, channel string, message any) (int64, error)

	XAdd(ctx context.Context, args *v9.XAddArgs) (string, error)
}
