package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublish_ReachesSubscriber(t *testing.T) {
	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := bus.Subscribe(ctx, "sub-1")
	bus.PublishItemDeleted("bf-001")

	select {
	case event := <-ch:
		assert.Equal(t, EventItemDeleted, event.Type)
		assert.Equal(t, map[string]string{"item_id": "bf-001"}, event.Data)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(context.Background(), "sub-1")

	bus.Unsubscribe("sub-1")

	_, open := <-ch
	assert.False(t, open)
}

func TestPublish_DoesNotBlockOnFullChannel(t *testing.T) {
	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus.Subscribe(ctx, "slow")
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			bus.PublishCategoryAdded("Pets")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}

func TestFormatSSE(t *testing.T) {
	out, err := FormatSSE(Event{Type: EventCategoryAdded, Data: map[string]string{"name": "Pets"}})

	assert.NoError(t, err)
	assert.Equal(t, "event: category_added\ndata: {\"name\":\"Pets\"}\n\n", out)
}
