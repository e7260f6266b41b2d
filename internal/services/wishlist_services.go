package services

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/session"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

const wishlistKind = "wishlist"

// Notifier surfaces user-visible confirmations. The storefront shows
// these where a browser would show a toast.
type Notifier interface {
	Notify(title, detail string)
}

// NopNotifier drops all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}

// WishlistService holds the signed-in user's saved products, with the
// same persistence and auth-reactivity contract as the cart.
type WishlistService struct {
	Store    store.Store
	Session  *session.Session
	Notifier Notifier
	Log      *logrus.Logger

	mu    sync.Mutex
	items []model.WishlistItem
}

func NewWishlistService(st store.Store, sess *session.Session, bus *session.Broadcaster, n Notifier, log *logrus.Logger) *WishlistService {
	if n == nil {
		n = NopNotifier{}
	}
	s := &WishlistService{Store: st, Session: sess, Notifier: n, Log: log}
	s.reload(sess.CurrentUserID())
	bus.Subscribe(s)
	return s
}

func (s *WishlistService) SignedIn(userID string) {
	s.reload(userID)
}

func (s *WishlistService) SignedOut() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Add saves the product. Adding a product that is already saved leaves
// the list unchanged; either way the user gets a confirmation.
func (s *WishlistService) Add(item model.WishlistItem) {
	s.mu.Lock()
	exists := s.containsLocked(item.ProductID)
	if !exists {
		s.items = append(s.items, item)
		s.persist()
	}
	s.mu.Unlock()

	s.Notifier.Notify("Added to Wishlist", item.Name+" has been added.")
}

// Remove deletes the product if present. The confirmation fires either
// way, so callers can treat removal as idempotent.
func (s *WishlistService) Remove(productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persist()
	s.mu.Unlock()

	s.Notifier.Notify("Removed from Wishlist", "")
}

// Contains reports whether the product is saved.
func (s *WishlistService) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productID)
}

// Items returns a copy of the current entries.
func (s *WishlistService) Items() []model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistService) containsLocked(productID string) bool {
	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// persist mirrors the list into the store; best-effort, like the cart.
// Caller holds the lock.
func (s *WishlistService) persist() {
	userID := s.Session.CurrentUserID()
	if userID == "" {
		return
	}

	raw, err := json.Marshal(s.items)
	if err != nil {
		s.Log.WithError(err).Warn("could not encode wishlist")
		return
	}
	if err := s.Store.Set(store.Key(wishlistKind, userID), raw); err != nil {
		s.Log.WithError(errors.Wrap(err, "persist wishlist")).Warn("wishlist not saved")
	}
}

func (s *WishlistService) reload(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if userID == "" {
		return
	}

	raw, err := s.Store.Get(store.Key(wishlistKind, userID))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.Log.WithError(err).Warn("could not load wishlist")
		}
		return
	}
	var items []model.WishlistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.Log.WithError(err).Warn("discarding unreadable wishlist")
		return
	}
	s.items = items
}
