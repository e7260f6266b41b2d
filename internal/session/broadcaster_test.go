package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/session"
)

type recordingListener struct {
	name   string
	events *[]string
}

func (l recordingListener) SignedIn(userID string) {
	*l.events = append(*l.events, l.name+":in:"+userID)
}

func (l recordingListener) SignedOut() {
	*l.events = append(*l.events, l.name+":out")
}

func TestBroadcasterDeliversInSubscriptionOrder(t *testing.T) {
	bus := session.NewBroadcaster()
	var events []string
	bus.Subscribe(recordingListener{name: "cart", events: &events})
	bus.Subscribe(recordingListener{name: "wishlist", events: &events})

	bus.SignedIn("u1")
	bus.SignedOut()

	assert.Equal(t, []string{
		"cart:in:u1", "wishlist:in:u1",
		"cart:out", "wishlist:out",
	}, events)
}

func TestBroadcasterEachTransitionObservedOnce(t *testing.T) {
	bus := session.NewBroadcaster()
	var events []string
	bus.Subscribe(recordingListener{name: "l", events: &events})

	bus.SignedIn("u1")
	bus.SignedIn("u2")

	require.Len(t, events, 2)
	assert.Equal(t, "l:in:u1", events[0])
	assert.Equal(t, "l:in:u2", events[1])
}

func TestBroadcasterUnsubscribe(t *testing.T) {
	bus := session.NewBroadcaster()
	var events []string
	unsubscribe := bus.Subscribe(recordingListener{name: "gone", events: &events})
	bus.Subscribe(recordingListener{name: "stays", events: &events})

	unsubscribe()
	unsubscribe() // double unsubscribe is harmless

	bus.SignedOut()
	assert.Equal(t, []string{"stays:out"}, events)
}

func TestBroadcasterNoSubscribers(t *testing.T) {
	bus := session.NewBroadcaster()

	assert.NotPanics(t, func() {
		bus.SignedIn("u1")
		bus.SignedOut()
	})
}
