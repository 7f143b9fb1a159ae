package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
)

// Publisher is implemented by every event bus backend.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// ChannelPublisher is the in-process bus: one watermill topic per event type.
type ChannelPublisher struct {
	pubSub *gochannel.GoChannel
}

func NewChannelPublisher(pubSub *gochannel.GoChannel) *ChannelPublisher {
	return &ChannelPublisher{pubSub: pubSub}
}

// NewGoChannel returns the pub/sub used by ChannelPublisher.
func NewGoChannel() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_type", event.EventType())
	msg.Metadata.Set("occurred_at", event.Timestamp().Format("2006-01-02T15:04:05.000Z07:00"))
	msg.SetContext(ctx)

	if err := p.pubSub.Publish(event.EventType(), msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventType(), err)
	}
	return nil
}

func (p *ChannelPublisher) Subscribe(ctx context.Context, eventType string) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, eventType)
}

func (p *ChannelPublisher) Close() error {
	return p.pubSub.Close()
}
