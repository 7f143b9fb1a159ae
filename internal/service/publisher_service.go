package service

import (
	"context"

	"sample-be/internal/pkg/logger"
	"sample-be/pkg/events"
)

type IPublisherService interface {
	// PublishEntityEvent must only be called after the mutation committed. A
	// failed publish is logged, never returned.
	PublishEntityEvent(ctx context.Context, eventType, entityName string, id int64, extra map[string]interface{})
}

type publisherService struct {
	publisher events.Publisher
	logger    logger.ILogger
}

// NewPublisherService accepts a nil publisher, in which case events are dropped.
func NewPublisherService(publisher events.Publisher, logger logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *publisherService) PublishEntityEvent(ctx context.Context, eventType, entityName string, id int64, extra map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	evt := events.NewEntityEvent(eventType, entityName, id, extra)
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("PublisherService", "Failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"id":         id,
			"error":      err.Error(),
		})
	}
}
