package services_test

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/services"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/session"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// setupCart signs in userID (with a non-expiring token) and returns the
// cart plus the backing store and session plumbing.
func setupCart(t *testing.T, userID string) (*services.CartService, *store.MemoryStore, *session.Session, *session.Broadcaster) {
	t.Helper()

	st := store.NewMemoryStore()
	bus := session.NewBroadcaster()
	sess := session.New(st, bus, testLogger())
	cart := services.NewCartService(st, sess, bus, testLogger())
	if userID != "" {
		sess.SignIn("opaque-token", model.User{ID: userID, Name: "Test"})
	}
	return cart, st, sess, bus
}

func lineInput(variantID string, price float64) model.CartItemInput {
	return model.CartItemInput{
		ProductID: "p1",
		VariantID: variantID,
		Name:      "Turmeric Powder",
		Price:     price,
		Weight:    "250g",
	}
}

func TestCartAddSameVariantAccumulates(t *testing.T) {
	cart, _, _, _ := setupCart(t, "u1")

	cart.Add(lineInput("v1", 100))
	cart.Add(lineInput("v1", 100))
	cart.Add(lineInput("v1", 100))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "v1", items[0].VariantID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 300.0, cart.TotalPrice())
}

func TestCartAddDistinctVariants(t *testing.T) {
	cart, _, _, _ := setupCart(t, "u1")

	cart.Add(lineInput("v1", 100))
	cart.Add(lineInput("v2", 50))

	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 150.0, cart.TotalPrice())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartSetQuantity(t *testing.T) {
	cart, _, _, _ := setupCart(t, "u1")
	cart.Add(lineInput("v1", 100))

	cart.SetQuantity("v1", 5)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
	assert.Equal(t, 500.0, cart.TotalPrice())

	t.Run("zero removes the line", func(t *testing.T) {
		cart.SetQuantity("v1", 0)
		assert.Empty(t, cart.Items())
	})

	t.Run("negative behaves like remove", func(t *testing.T) {
		cart.Add(lineInput("v2", 10))
		cart.SetQuantity("v2", -3)
		assert.Empty(t, cart.Items())
	})
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart, _, _, _ := setupCart(t, "u1")
	cart.Add(lineInput("v1", 100))

	cart.Remove("v1")
	cart.Remove("v1")
	cart.Remove("never-existed")

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartTotalPriceIsStableAcrossReads(t *testing.T) {
	cart, _, _, _ := setupCart(t, "u1")
	cart.Add(lineInput("v1", 99.5))
	cart.Add(lineInput("v2", 0.5))

	first := cart.TotalPrice()
	second := cart.TotalPrice()
	assert.Equal(t, first, second)
}

func TestCartPersistsUnderUserScopedKey(t *testing.T) {
	cart, st, _, _ := setupCart(t, "u1")
	cart.Add(lineInput("v1", 100))

	raw, err := st.Get(store.Key("cart", "u1"))
	require.NoError(t, err)

	var saved []model.CartItem
	require.NoError(t, json.Unmarshal(raw, &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "v1", saved[0].VariantID)
	assert.Equal(t, 1, saved[0].Quantity)
}

func TestCartAnonymousMutationsAreNotPersisted(t *testing.T) {
	cart, st, _, _ := setupCart(t, "")

	cart.Add(lineInput("v1", 100))

	// In-memory state still works for the session.
	assert.Equal(t, 1, cart.ItemCount())

	_, err := st.Get(store.Key("cart", ""))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCartSignOutClearsWithoutFlushing(t *testing.T) {
	cart, st, sess, _ := setupCart(t, "u1")
	cart.Add(lineInput("v1", 100))

	sess.SignOut()

	assert.Empty(t, cart.Items())

	// The previously saved cart stays on disk for the next sign-in.
	raw, err := st.Get(store.Key("cart", "u1"))
	require.NoError(t, err)
	var saved []model.CartItem
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Len(t, saved, 1)
}

func TestCartIsolationAcrossUsers(t *testing.T) {
	cart, _, sess, _ := setupCart(t, "userB")
	cart.Add(lineInput("v-b", 40))

	sess.SignOut()
	sess.SignIn("opaque-token", model.User{ID: "userA"})
	cart.Add(lineInput("v-a", 10))

	// Switching back to userB must surface exactly userB's saved list.
	sess.SignOut()
	sess.SignIn("opaque-token", model.User{ID: "userB"})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "v-b", items[0].VariantID)
}

func TestCartSurvivesStoreFailure(t *testing.T) {
	st := &failingStore{}
	bus := session.NewBroadcaster()
	sess := session.New(st, bus, testLogger())
	cart := services.NewCartService(st, sess, bus, testLogger())
	sess.SignIn("opaque-token", model.User{ID: "u1"})

	// Persistence is best-effort: mutations never surface store errors.
	cart.Add(lineInput("v1", 100))
	cart.SetQuantity("v1", 2)

	assert.Equal(t, 200.0, cart.TotalPrice())
}

// failingStore rejects every operation, like a browser over quota.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, assert.AnError }
func (failingStore) Set(string, []byte) error   { return assert.AnError }
func (failingStore) Delete(string) error        { return assert.AnError }
