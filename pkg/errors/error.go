package errors

import (
	"bytes"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// ErrInvalidOrderSize is returned when an order quantity is not positive.
	ErrInvalidOrderSize ErrorCode = "invalid_order_size"
	// ErrInvalidOrderPrice is returned when a limit order price is not positive.
	ErrInvalidOrderPrice ErrorCode = "invalid_order_price"
	// ErrInvalidOrderSide is returned for a side other than BUY or SELL.
	ErrInvalidOrderSide ErrorCode = "invalid_order_side"
	// ErrInvalidOrderKind is returned for a kind other than LIMIT or MARKET.
	ErrInvalidOrderKind ErrorCode = "invalid_order_kind"
	// ErrDuplicateOrderID is returned when an order id already rests in the book.
	ErrDuplicateOrderID ErrorCode = "duplicate_order_id"
	// ErrOrderNotPending is returned when a submitted order already carries fills or is terminal.
	ErrOrderNotPending ErrorCode = "order_not_pending"

	// ErrInsufficientAskVolume represents an error when there is not enough ask volume to fill a buy.
	ErrInsufficientAskVolume ErrorCode = "insufficient_ask_volume"
	// ErrInsufficientBidVolume represents an error when there is not enough bid volume to fill a sell.
	ErrInsufficientBidVolume ErrorCode = "insufficient_bid_volume"

	// ErrInvariantViolation marks a broken book invariant. It is a programming defect.
	ErrInvariantViolation ErrorCode = "invariant_violation"

	// ErrStrategyNotRunning is returned when a stopped strategy is asked to trade or stop.
	ErrStrategyNotRunning ErrorCode = "strategy_not_running"
	// ErrStrategyAlreadyRunning is returned when a running strategy is started again.
	ErrStrategyAlreadyRunning ErrorCode = "strategy_already_running"

	// ErrInvalidConfiguration is returned when a component receives unusable parameters.
	ErrInvalidConfiguration ErrorCode = "invalid_configuration"
	// ErrInvalidTradeRecord is returned when a fill with a non-positive or non-finite price or quantity is recorded.
	ErrInvalidTradeRecord ErrorCode = "invalid_trade_record"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when closing the Redis connection.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when Redis does not answer a ping.
	RedisPingError ErrorCode = "redis_ping_error"
	// RedisXAddError represents an error when adding entries to a stream in Redis.
	RedisXAddError ErrorCode = "redis_xadd_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"

	// KafkaPublishError represents an error when writing messages to Kafka.
	KafkaPublishError ErrorCode = "kafka_publish_error"
	// ErrEquityPublish represents an error when an equity snapshot could not be published.
	ErrEquityPublish ErrorCode = "equity_publish_error"

	// LoggerBuildError represents an error when the zap logger cannot be built.
	LoggerBuildError ErrorCode = "logger_build_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether any detail was collected.
func (b *BaseError) HasDetails() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
