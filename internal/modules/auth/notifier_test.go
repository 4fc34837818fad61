package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversToSubscribers(t *testing.T) {
	n := NewNotifier()
	ch1, cancel1 := n.Subscribe()
	ch2, cancel2 := n.Subscribe()
	defer cancel1()
	defer cancel2()

	ev := Event{Kind: EventSignedIn, UserID: "u1"}
	n.Publish(ev)

	assert.Equal(t, ev, <-ch1)
	assert.Equal(t, ev, <-ch2)
}

func TestNotifierCancelStopsDelivery(t *testing.T) {
	n := NewNotifier()
	ch, cancel := n.Subscribe()
	cancel()

	// channel is closed, publish must not panic
	n.Publish(Event{Kind: EventSignedOut, UserID: "u1"})
	_, open := <-ch
	assert.False(t, open)

	// cancel is idempotent
	cancel()
}

func TestNotifierNeverBlocksPublisher(t *testing.T) {
	n := NewNotifier()
	ch, cancel := n.Subscribe()
	defer cancel()

	// overflow the buffer without a reader; Publish must return
	for i := 0; i < 100; i++ {
		n.Publish(Event{Kind: EventSignedIn, UserID: "u1"})
	}

	// the buffered events are still readable
	ev := <-ch
	require.Equal(t, EventSignedIn, ev.Kind)
}
