package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const WorkspaceTopic = "workspace.events"

// Envelope is the wire form of an event on the bus, the websocket feed and
// the NATS bridge.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func Encode(evt events.Event) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
}

func Decode(payload []byte) (events.Event, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if env.Data == nil {
		env.Data = map[string]interface{}{}
	}
	return events.BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}

// Bus carries store events to asynchronous consumers over a watermill
// topic. It implements events.Publisher.
type Bus struct {
	// mu keeps concurrent publishers from interleaving inside the channel.
	mu     sync.Mutex
	pubSub *gochannel.GoChannel
	topic  string
	logger logger.ILogger
}

func NewBus(pubSub *gochannel.GoChannel, log logger.ILogger) *Bus {
	return &Bus{pubSub: pubSub, topic: WorkspaceTopic, logger: log}
}

// NewPubSub builds the in-process channel shared by the bus and the
// processing queue. Publish returns only after every subscriber acked, so
// each subscriber sees messages in publish order.
func NewPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            256,
		BlockPublishUntilSubscriberAck: true,
	}, watermill.NopLogger{})
}

func (b *Bus) Publish(evt events.Event) {
	payload, err := Encode(evt)
	if err != nil {
		b.logger.Error("EVENTBUS", "Failed to encode event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	b.mu.Lock()
	err = b.pubSub.Publish(b.topic, msg)
	b.mu.Unlock()
	if err != nil {
		b.logger.Error("EVENTBUS", "Failed to publish event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
	}
}

// Subscribe delivers every event on the bus to handler until ctx is done.
// Each subscriber receives its own copy of the stream.
func (b *Bus) Subscribe(ctx context.Context, name string, handler func(events.Event)) error {
	messages, err := b.pubSub.Subscribe(ctx, b.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", name, err)
	}

	go func() {
		for msg := range messages {
			evt, err := Decode(msg.Payload)
			if err != nil {
				b.logger.Warn("EVENTBUS", "Dropping malformed event", map[string]interface{}{"subscriber": name, "error": err.Error()})
				msg.Ack()
				continue
			}
			handler(evt)
			msg.Ack()
		}
		b.logger.Debug("EVENTBUS", "Subscriber stopped", map[string]interface{}{"subscriber": name})
	}()
	return nil
}
