package session

import "sync"

// Listener observes auth-state transitions. Both callbacks run
// synchronously on the emitting goroutine, so a transition is fully
// observed before the next user action is processed.
type Listener interface {
	SignedIn(userID string)
	SignedOut()
}

// Broadcaster is the single process-wide publish point for sign-in and
// sign-out transitions. Subscribers are notified in subscription order,
// exactly once per emitted transition.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id       int
	listener Listener
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers l and returns a function that removes it again.
func (b *Broadcaster) Subscribe(l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// SignedIn announces that userID is now the current user.
func (b *Broadcaster) SignedIn(userID string) {
	for _, l := range b.snapshot() {
		l.SignedIn(userID)
	}
}

// SignedOut announces that no user is signed in anymore.
func (b *Broadcaster) SignedOut() {
	for _, l := range b.snapshot() {
		l.SignedOut()
	}
}

func (b *Broadcaster) snapshot() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Listener, len(b.subs))
	for i, s := range b.subs {
		out[i] = s.listener
	}
	return out
}
