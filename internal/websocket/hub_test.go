package websocket

import (
	"context"
	"testing"
	"time"

	"docintel-be/internal/pkg/eventbus"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToEveryClient(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	phone := &Client{Hub: hub, UserID: "1", Send: make(chan []byte, 4)}
	laptop := &Client{Hub: hub, UserID: "1", Send: make(chan []byte, 4)}
	hub.register <- phone
	hub.register <- laptop

	hub.Publish(events.New(events.DocumentUploaded, map[string]interface{}{"document_id": "9"}))

	for _, c := range []*Client{phone, laptop} {
		select {
		case data := <-c.Send:
			evt, err := eventbus.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, events.DocumentUploaded, evt.EventType())
			assert.Equal(t, "9", evt.Payload()["document_id"])
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := &Client{Hub: hub, UserID: "1", Send: make(chan []byte, 1)}
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}
