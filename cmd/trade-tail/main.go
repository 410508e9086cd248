package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tradepublisherv1 "github.com/muhammadchandra19/marketsim/internal/domain/trade-publisher/v1"
	"github.com/muhammadchandra19/marketsim/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// tally accumulates the trades read so far.
type tally struct {
	trades   int
	volume   float64
	notional float64
	byTaker  map[string]int
}

func (t *tally) add(event *tradepublisherv1.TradeEvent) {
	t.trades++
	t.volume += event.Quantity
	t.notional += event.Price * event.Quantity
	t.byTaker[event.TakerSide]++
}

func (t *tally) vwap() float64 {
	if t.volume == 0 {
		return 0
	}
	return t.notional / t.volume
}

func main() {
	var (
		brokers = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic   = flag.String("topic", "marketsim.trades", "Kafka topic name")
		group   = flag.String("group", "", "Consumer group (optional, reads partition 0 from the start if empty)")
		limit   = flag.Int("max", 0, "Stop after this many trades (0 reads until interrupted)")
		every   = flag.Int("every", 100, "Log a running summary every N trades")
	)
	flag.Parse()

	log, err := logger.NewLogger(logger.WithEncoding("console"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	readerConfig := kafka.ReaderConfig{
		Brokers:  strings.Split(*brokers, ","),
		Topic:    *topic,
		MaxWait:  500 * time.Millisecond,
		MinBytes: 1,
		MaxBytes: 10e6,
	}
	if *group != "" {
		readerConfig.GroupID = *group
	} else {
		readerConfig.StartOffset = kafka.FirstOffset
	}
	reader := kafka.NewReader(readerConfig)
	defer reader.Close()

	log.Info("Reading trades",
		logger.Field{Key: "brokers", Value: *brokers},
		logger.Field{Key: "topic", Value: *topic},
	)

	t := &tally{byTaker: make(map[string]int)}
	for *limit == 0 || t.trades < *limit {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Error(err, logger.Field{Key: "action", Value: "read_trade"})
			}
			break
		}

		event := tradepublisherv1.FromBytes(msg.Value)
		if event == nil {
			log.Warn("Skipping undecodable message", logger.Field{Key: "offset", Value: msg.Offset})
			continue
		}
		t.add(event)

		if *every > 0 && t.trades%*every == 0 {
			log.Info("Trades so far",
				logger.Field{Key: "trades", Value: t.trades},
				logger.Field{Key: "lastPrice", Value: event.Price},
				logger.Field{Key: "vwap", Value: t.vwap()},
			)
		}
	}

	log.Info("Trade summary",
		logger.Field{Key: "trades", Value: t.trades},
		logger.Field{Key: "volume", Value: t.volume},
		logger.Field{Key: "vwap", Value: t.vwap()},
		logger.Field{Key: "takerSides", Value: t.byTaker},
	)
}
