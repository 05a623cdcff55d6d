package sse_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/internal/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHub_PublishReachesSubscriber checks the basic fan-out path.
func TestHub_PublishReachesSubscriber(t *testing.T) {
	h := sse.NewHub()
	ch, cancel := h.Subscribe("run-1")
	defer cancel()

	h.Publish("run-1", "hello")

	select {
	case msg := <-ch:
		assert.Equal(t, "hello", msg)
	default:
		t.Fatal("message not delivered")
	}
}

// TestHub_RunIsolation ensures messages stay within their run ID.
func TestHub_RunIsolation(t *testing.T) {
	h := sse.NewHub()
	a, cancelA := h.Subscribe("run-a")
	defer cancelA()
	b, cancelB := h.Subscribe("run-b")
	defer cancelB()

	h.Publish("run-a", "for-a")

	require.Len(t, a, 1)
	assert.Empty(t, b)
}

// TestHub_UnsubscribeStopsDelivery checks cancel removes the subscriber.
func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := sse.NewHub()
	ch, cancel := h.Subscribe("run-1")
	cancel()

	h.Publish("run-1", "late")
	assert.Empty(t, ch)
}

// TestHub_SlowSubscriberDropped fills a subscriber's buffer and verifies
// further messages are dropped instead of blocking the publisher.
func TestHub_SlowSubscriberDropped(t *testing.T) {
	h := sse.NewHub()
	ch, cancel := h.Subscribe("run-1")
	defer cancel()

	for i := 0; i < 40; i++ {
		h.Publish("run-1", "m") // never blocks
	}
	assert.Len(t, ch, 16, "only the buffered prefix is retained")
}
