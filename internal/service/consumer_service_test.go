package service

import (
	"context"
	"testing"
	"time"

	"sample-be/internal/pkg/logger"
	"sample-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsumerService_LogsPublishedEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := events.NewChannelPublisher(events.NewGoChannel())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(bus, logger.NewFromCore(core))
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, bus.Publish(ctx, events.NewEntityEvent(events.ParentEntityCreated, "sampleParentEntity", 7, nil)))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Entity event").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	fields := logs.FilterMessage("Entity event").All()[0].ContextMap()
	assert.Equal(t, "ConsumerService", fields["module"])
	details, ok := fields["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, events.ParentEntityCreated, details["event_type"])
}
