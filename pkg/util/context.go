package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	runIDKey    = key("x-run-id")
	symbolIDKey = key("symbol")
)

// WithRunID returns a context carrying a simulation run id.
// A fresh uuid-v4 is generated when id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = generate()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id from context, or an empty string when absent.
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithSymbol returns a context carrying the traded symbol.
func WithSymbol(ctx context.Context, symbol string) context.Context {
	return context.WithValue(ctx, symbolIDKey, symbol)
}

// GetSymbol returns the traded symbol from context
// will return empty string if not present
func GetSymbol(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	symbol, _ := ctx.Value(symbolIDKey).(string)
	return symbol
}

// generate returns a uuid-v4 string to use as run id
func generate() string {
	return uuid.NewString()
}
