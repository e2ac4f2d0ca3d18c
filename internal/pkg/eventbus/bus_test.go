package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	payload, err := Encode(events.BaseEvent{
		Type:       events.FolderCreated,
		Data:       map[string]interface{}{"folder_id": "reports"},
		OccurredAt: at,
	})
	require.NoError(t, err)

	evt, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, events.FolderCreated, evt.EventType())
	assert.Equal(t, "reports", evt.Payload()["folder_id"])
	assert.True(t, at.Equal(evt.Timestamp()))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("{"))
	assert.Error(t, err)

	evt, err := Decode([]byte(`{"type":"USAGE_UPDATED"}`))
	require.NoError(t, err)
	assert.NotNil(t, evt.Payload())
}

func TestBus_FansOutToEverySubscriber(t *testing.T) {
	pubSub := NewPubSub()
	defer pubSub.Close()
	bus := NewBus(pubSub, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	got := map[string][]string{}
	record := func(name string) func(events.Event) {
		return func(evt events.Event) {
			mu.Lock()
			defer mu.Unlock()
			got[name] = append(got[name], evt.EventType())
		}
	}
	require.NoError(t, bus.Subscribe(ctx, "a", record("a")))
	require.NoError(t, bus.Subscribe(ctx, "b", record("b")))

	bus.Publish(events.New(events.DocumentUploaded, nil))
	bus.Publish(events.New(events.DocumentDeleted, nil))

	want := []string{events.DocumentUploaded, events.DocumentDeleted}
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return assert.ObjectsAreEqual(want, got["a"]) && assert.ObjectsAreEqual(want, got["b"])
	}, time.Second, 5*time.Millisecond)
}

func TestBus_PreservesPublishOrder(t *testing.T) {
	pubSub := NewPubSub()
	defer pubSub.Close()
	bus := NewBus(pubSub, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const n = 200
	var mu sync.Mutex
	var got []float64
	require.NoError(t, bus.Subscribe(ctx, "usage", func(evt events.Event) {
		used, _ := evt.Payload()["used"].(float64)
		mu.Lock()
		got = append(got, used)
		mu.Unlock()
	}))

	for i := 0; i < n; i++ {
		bus.Publish(events.New(events.UsageUpdated, map[string]interface{}{"kind": "chats", "used": i}))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == n
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i, used := range got {
		require.Equal(t, float64(i), used, "event %d out of order", i)
	}
}
