package inline

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Publisher hands media events straight to a message service, used when no broker is configured
type Publisher struct {
	handler port.MessageService
	logger  *slog.Logger
}

func NewPublisher(handler port.MessageService, logger *slog.Logger) *Publisher {
	return &Publisher{handler: handler, logger: logger}
}

// PublishMediaUploaded runs the handler synchronously, with the same payload a broker would carry
func (p *Publisher) PublishMediaUploaded(ctx context.Context, event domain.MediaUploaded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal media event: %w", err)
	}
	if err := p.handler.HandleMessage(ctx, data); err != nil {
		return fmt.Errorf("media event %d: %w", event.FileID, err)
	}
	p.logger.Debug("media event handled inline", slog.Int64("fileID", event.FileID))
	return nil
}

func (p *Publisher) Close() error {
	return nil
}
