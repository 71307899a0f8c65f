package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_EmitReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var received []Event
	var wg sync.WaitGroup
	wg.Add(2)

	handler := func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}
	bus.Subscribe(EventTypeTrackerAdded, handler)
	bus.Subscribe(EventTypeTrackerAdded, handler)

	bus.Emit(context.Background(), TrackerAddedEvent{GuildID: 100, EntityID: "P1", EntityName: "Alice", EntityType: "player"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 2)
}

func TestBus_EmitIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeKillboardReset, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(context.Background(), TrackerRemovedEvent{GuildID: 100, EntityID: "P1", EntityName: "Alice"})

	select {
	case <-called:
		t.Fatal("handler ran for an unrelated event type")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotCrash(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(EventTypeTrackerAdded, func(ctx context.Context, event Event) {
		panic("boom")
	})

	ok := make(chan struct{}, 1)
	bus.Subscribe(EventTypeTrackerAdded, func(ctx context.Context, event Event) {
		ok <- struct{}{}
	})

	bus.Emit(context.Background(), TrackerAddedEvent{GuildID: 100})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("healthy handler did not run")
	}
}
