package nats

import (
	"context"
	"easyref/internal/config"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"easyref/internal/core/port"
)

var _ port.EventConsumer = (*Consumer)(nil)

const maxReceiveRetryDelay = 5 * time.Second

// messageIterator is the part of jetstream.MessagesContext the receive loop reads
type messageIterator interface {
	Next() (jetstream.Msg, error)
}

// Consumer delivers the media events of the stream to a port.MessageService
type Consumer struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
	iter   jetstream.MessagesContext
	wg     sync.WaitGroup
	// retryDelay is the first pause after a failed receive, doubled up to maxReceiveRetryDelay
	retryDelay time.Duration
}

// NewNATSConsumer creates a new consumer
func NewNATSConsumer(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Consumer, error) {
	conn, js, err := connect(ctx, cfg, cfg.ConsumerName, logger)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		js:         js,
		config:     cfg,
		logger:     logger,
		retryDelay: 250 * time.Millisecond,
	}, nil
}

// Subscribe subscribes to stream and handles messages.
// A message is acked when handled, nacked for redelivery otherwise.
func (n *Consumer) Subscribe(ctx context.Context, handler port.MessageService) error {
	consumerCfg := jetstream.ConsumerConfig{
		Durable:       n.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: n.config.Subject,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		BackOff:       []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
	}

	cons, err := n.js.CreateOrUpdateConsumer(ctx, n.config.StreamName, consumerCfg)
	if err != nil {
		return err
	}

	iter, err := cons.Messages()
	if err != nil {
		return err
	}
	n.iter = iter

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.logger.Info("NATS subscription started", slog.String("subject", n.config.Subject))
		n.receive(ctx, iter, handler)
		n.logger.Info("NATS subscription stopped")
	}()
	return nil
}

// receive handles messages until ctx ends or the iterator is closed.
// Other receive errors are logged and retried with a growing pause.
func (n *Consumer) receive(ctx context.Context, iter messageIterator, handler port.MessageService) {
	delay := n.retryDelay
	for ctx.Err() == nil {
		msg, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, jetstream.ErrMsgIteratorClosed) {
				return
			}
			n.logger.Warn("failed to receive message, retrying",
				slog.Duration("retryIn", delay),
				slog.Any("error", err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, maxReceiveRetryDelay)
			continue
		}
		delay = n.retryDelay

		if handleErr := handler.HandleMessage(ctx, msg.Data()); handleErr != nil {
			if errNak := msg.Nak(); errNak != nil {
				n.logger.Error("failed to nak message", slog.Any("error", errNak))
			}
			n.logger.Warn("failed to handle message", slog.Any("error", handleErr))
			continue
		}
		if ackErr := msg.Ack(); ackErr != nil {
			n.logger.Error("failed to ack message", slog.Any("error", ackErr))
		}
	}
}

// Close graceful shutdown
func (n *Consumer) Close() error {
	if n.iter != nil {
		n.iter.Stop()
	}

	n.wg.Wait()

	if n.conn != nil {
		n.conn.Close()
	}
	return nil
}
