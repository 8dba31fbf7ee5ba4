package nats

import (
	"context"
	"easyref/internal/config"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher publishes media events to the stream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher creates a new publisher
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(ctx, cfg, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, js: js, config: cfg, logger: logger}, nil
}

// PublishMediaUploaded publishes the event once per file: the file id is the message id
func (p *Publisher) PublishMediaUploaded(ctx context.Context, event domain.MediaUploaded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal media event: %w", err)
	}

	ack, err := p.js.Publish(ctx, p.config.Subject, data, jetstream.WithMsgID(strconv.FormatInt(event.FileID, 10)))
	if err != nil {
		return fmt.Errorf("failed to publish media event: %w", err)
	}

	p.logger.Info("media event published",
		slog.Int64("fileID", event.FileID),
		slog.Uint64("sequence", ack.Sequence))
	return nil
}

// Close drains pending publishes then closes the connection
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
