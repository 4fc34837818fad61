package auth

import "sync"

// EventKind is the type of an auth-state change.
type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

// Event is one auth-state change.
type Event struct {
	Kind   EventKind `json:"kind"`
	UserID string    `json:"user_id"`
}

// Notifier fans auth-state changes out to in-process subscribers.
// Publishing never blocks; a subscriber that falls behind loses events
// rather than stalling the publisher.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: map[int]chan Event{}}
}

// Subscribe registers a listener. The returned cancel func must be
// called to release the channel.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan Event, 8)
	n.subs[id] = ch
	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
}

// Publish delivers an event to every subscriber with room in its buffer.
func (n *Notifier) Publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
