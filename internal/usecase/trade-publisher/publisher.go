package tradepublisher

import (
	"context"
	"time"

	tradepublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/trade-publisher/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Config holds the Kafka settings of the trade publisher.
type Config struct {
	Brokers      []string      `env:"BROKERS"`
	Topic        string        `env:"TOPIC" envDefault:"marketsim.trades"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Brokers) > 0
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes trade events to a Kafka topic keyed by symbol, so one
// instrument's trades stay ordered on one partition.
type Publisher struct {
	kafkaWriter messageWriter
	logger      *logger.Logger
}

var _ tradepublisherv1.TradePublisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for trade events.
func NewPublisher(config Config, log *logger.Logger) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           config.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, log)
}

func newPublisher(writer messageWriter, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Publisher{
		kafkaWriter: writer,
		logger:      log,
	}
}

// PublishTrades publishes events in one batch, preserving their order.
func (p *Publisher) PublishTrades(ctx context.Context, events ...*tradepublisherv1.TradeEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msgs = append(msgs, kafka.Message{
			Key:   event.Key(),
			Value: tradepublisherv1.ToBytes(event),
			Time:  event.Timestamp,
		})
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "count", Value: len(events)},
			logger.Field{Key: "firstTradeID", Value: events[0].TradeID},
		)
		return errors.NewTracer(string(errors.KafkaPublishError)).Wrap(err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
