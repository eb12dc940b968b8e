package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviegrid/internal/domain"
)

func collect(b EventBus, eventType EventType) (func() []DomainEvent, func()) {
	var mu sync.Mutex
	var got []DomainEvent
	unsubscribe := b.Subscribe(eventType, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})
	return func() []DomainEvent {
		mu.Lock()
		defer mu.Unlock()
		out := make([]DomainEvent, len(got))
		copy(out, got)
		return out
	}, unsubscribe
}

func TestBusDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	events, _ := collect(b, EventViewChanged)
	b.Publish(ViewChangedEvent{From: domain.ViewHome, To: domain.ViewPopular})
	b.Publish(ErrorEvent{Message: "ignored"})
	b.Publish(ViewChangedEvent{From: domain.ViewPopular, To: domain.ViewFavorites})

	require.Eventually(t, func() bool { return len(events()) == 2 }, time.Second, 5*time.Millisecond)
	got := events()
	assert.Equal(t, domain.ViewPopular, got[0].(ViewChangedEvent).To)
	assert.Equal(t, domain.ViewFavorites, got[1].(ViewChangedEvent).To)
}

func TestBusUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	first, unsubscribe := collect(b, EventError)
	second, _ := collect(b, EventError)
	unsubscribe()

	b.Publish(ErrorEvent{Message: "boom"})
	require.Eventually(t, func() bool { return len(second()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first())
}

func TestBusRecoversFromPanics(t *testing.T) {
	b := New(nil)
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("handler failure") })
	events, _ := collect(b, EventError)

	b.Publish(ErrorEvent{Message: "one"})
	b.Publish(ErrorEvent{Message: "two"})
	require.Eventually(t, func() bool { return len(events()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestBusCloseIsIdempotent(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()
	assert.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "late"}) })
}
