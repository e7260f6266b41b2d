package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/session"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(title, _ string) {
	n.titles = append(n.titles, title)
}

func setupWishlist(t *testing.T, userID string) (*services.WishlistService, *recordingNotifier, *session.Session, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	bus := session.NewBroadcaster()
	sess := session.New(st, bus, testLogger())
	notifier := &recordingNotifier{}
	wl := services.NewWishlistService(st, sess, bus, notifier, testLogger())
	if userID != "" {
		sess.SignIn("opaque-token", model.User{ID: userID})
	}
	return wl, notifier, sess, st
}

func saved(productID string) model.WishlistItem {
	return model.WishlistItem{ProductID: productID, Name: "Red Chilli Powder", Price: 80}
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	wl, notifier, _, _ := setupWishlist(t, "u1")

	wl.Add(saved("p1"))
	wl.Add(saved("p1"))

	assert.Len(t, wl.Items(), 1)
	assert.True(t, wl.Contains("p1"))

	// The confirmation still fires on the duplicate add.
	assert.Equal(t, []string{"Added to Wishlist", "Added to Wishlist"}, notifier.titles)
}

func TestWishlistRemoveIsIdempotent(t *testing.T) {
	wl, notifier, _, _ := setupWishlist(t, "u1")
	wl.Add(saved("p1"))

	wl.Remove("p1")
	wl.Remove("p1")

	assert.Empty(t, wl.Items())
	assert.False(t, wl.Contains("p1"))
	require.Len(t, notifier.titles, 3)
	assert.Equal(t, "Removed from Wishlist", notifier.titles[2])
}

func TestWishlistContains(t *testing.T) {
	wl, _, _, _ := setupWishlist(t, "u1")
	wl.Add(saved("p1"))
	wl.Add(saved("p2"))

	assert.True(t, wl.Contains("p1"))
	assert.True(t, wl.Contains("p2"))
	assert.False(t, wl.Contains("p3"))
}

func TestWishlistFollowsSession(t *testing.T) {
	wl, _, sess, _ := setupWishlist(t, "u1")
	wl.Add(saved("p1"))

	sess.SignOut()
	assert.Empty(t, wl.Items(), "sign-out must clear the in-memory list")

	sess.SignIn("opaque-token", model.User{ID: "u2"})
	assert.Empty(t, wl.Items(), "a different user must not see u1's list")

	sess.SignOut()
	sess.SignIn("opaque-token", model.User{ID: "u1"})
	require.Len(t, wl.Items(), 1)
	assert.Equal(t, "p1", wl.Items()[0].ProductID)
}
