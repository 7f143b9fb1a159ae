package service

import (
	"context"

	"sample-be/internal/pkg/logger"
	"sample-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

// EventSubscriber is the consuming side of the in-process bus.
type EventSubscriber interface {
	Subscribe(ctx context.Context, eventType string) (<-chan *message.Message, error)
}

// IConsumerService writes every entity event to the audit log.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber EventSubscriber
	eventTypes []string
	logger     logger.ILogger
}

func NewConsumerService(subscriber EventSubscriber, logger logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		eventTypes: events.AllEntityEventTypes,
		logger:     logger,
	}
}

// Consume subscribes to every entity event type and returns; messages are
// processed in the background until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	for _, eventType := range cs.eventTypes {
		messages, err := cs.subscriber.Subscribe(ctx, eventType)
		if err != nil {
			return err
		}

		go func(messages <-chan *message.Message) {
			for msg := range messages {
				cs.processMessage(msg)
			}
		}(messages)
	}
	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		// Ack invalid messages to prevent redelivery
		msg.Ack()
		return
	}

	cs.logger.Info("ConsumerService", "Entity event", map[string]interface{}{
		"event_type":  msg.Metadata.Get("event_type"),
		"occurred_at": msg.Metadata.Get("occurred_at"),
		"payload":     payload,
	})
	msg.Ack()
}
