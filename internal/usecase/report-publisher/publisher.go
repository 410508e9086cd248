package reportpublisher

import (
	"context"

	reportpublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/report-publisher/v1"
	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/muhammadchandra19/marketsim/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Config holds the stream settings of the publisher.
type Config struct {
	Stream string `env:"STREAM" envDefault:"marketsim:equity"`
	// MaxLen caps the stream approximately; 0 keeps every entry.
	MaxLen int64 `env:"STREAM_MAX_LEN" envDefault:"10000"`
	// Channel, when set, also receives every record for live viewers.
	Channel string `env:"CHANNEL"`
}

// Publisher appends equity records to a Redis stream.
type Publisher struct {
	config      Config
	redisclient redis.Client
	logger      *logger.Logger
}

var _ reportpublisherv1.ReportPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher over a connected Redis client.
func NewPublisher(redisclient redis.Client, config Config, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Publisher{
		config:      config,
		redisclient: redisclient,
		logger:      log,
	}
}

// PublishEquity appends record to the stream.
func (p *Publisher) PublishEquity(ctx context.Context, record *reportpublisherv1.EquityRecord) error {
	if record == nil {
		return errors.NewErrorDetails("equity record is nil", string(errors.RedisXAddError), "record")
	}

	id, err := p.redisclient.XAdd(ctx, &v9.XAddArgs{
		Stream: p.config.Stream,
		MaxLen: p.config.MaxLen,
		Approx: p.config.MaxLen > 0,
		Values: record.ToValues(),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "stream", Value: p.config.Stream},
			logger.Field{Key: "step", Value: record.Step},
		)
		return errors.NewTracer(string(errors.ErrEquityPublish)).Wrap(err)
	}

	if p.config.Channel != "" {
		if _, err := p.redisclient.Publish(ctx, p.config.Channel, reportpublisherv1.ToBytes(record)); err != nil {
			p.logger.WarnContext(ctx, "Failed to notify equity channel",
				logger.Field{Key: "channel", Value: p.config.Channel},
				logger.Field{Key: "error", Value: err.Error()},
			)
		}
	}

	p.logger.DebugContext(ctx, "Equity record published",
		logger.Field{Key: "stream", Value: p.config.Stream},
		logger.Field{Key: "id", Value: id},
		logger.Field{Key: "step", Value: record.Step},
	)
	return nil
}

// Close disconnects the underlying client.
func (p *Publisher) Close(ctx context.Context) error {
	return p.redisclient.Disconnect(ctx)
}
