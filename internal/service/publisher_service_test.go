package service

import (
	"context"
	"errors"
	"testing"

	"sample-be/internal/pkg/logger"
	"sample-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubBus struct {
	published []events.Event
	err       error
}

func (b *stubBus) Publish(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return b.err
}

func TestPublisherService_Publishes(t *testing.T) {
	bus := &stubBus{}
	svc := NewPublisherService(bus, logger.NewNopLogger())

	svc.PublishEntityEvent(context.Background(), events.ParentEntityCreated, "sampleParentEntity", 1, nil)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.ParentEntityCreated, bus.published[0].EventType())
	assert.Equal(t, int64(1), bus.published[0].Payload()["id"])
}

func TestPublisherService_FailureIsLoggedOnly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewPublisherService(&stubBus{err: errors.New("bus down")}, logger.NewFromCore(core))

	assert.NotPanics(t, func() {
		svc.PublishEntityEvent(context.Background(), events.ChildEntityDeleted, "sampleChildEntity", 2, nil)
	})
	assert.Equal(t, 1, logs.FilterMessage("Failed to publish event").Len())
}

func TestPublisherService_NilBus(t *testing.T) {
	svc := NewPublisherService(nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		svc.PublishEntityEvent(context.Background(), events.ChildEntityDeleted, "sampleChildEntity", 2, nil)
	})
}
