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

const cartKind = "cart"

// CartService holds the signed-in user's cart lines and mirrors every
// mutation into the session-scoped store. Stock checks happen in the
// catalog layer before items reach this service.
type CartService struct {
	Store   store.Store
	Session *session.Session
	Log     *logrus.Logger

	mu    sync.Mutex
	items []model.CartItem
}

// NewCartService loads the current user's saved cart (if any) and
// subscribes to auth transitions so the cart follows the session.
func NewCartService(st store.Store, sess *session.Session, bus *session.Broadcaster, log *logrus.Logger) *CartService {
	s := &CartService{Store: st, Session: sess, Log: log}
	s.reload(sess.CurrentUserID())
	bus.Subscribe(s)
	return s
}

// SignedIn swaps in the new user's saved cart.
func (s *CartService) SignedIn(userID string) {
	s.reload(userID)
}

// SignedOut empties the cart. Nothing is flushed to storage: there is
// no anonymous cart.
func (s *CartService) SignedOut() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Add appends a new line with quantity 1, or bumps the quantity when a
// line for the same variant already exists.
func (s *CartService) Add(in model.CartItemInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == in.VariantID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, model.CartItem{
		ProductID:     in.ProductID,
		VariantID:     in.VariantID,
		Name:          in.Name,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Weight:        in.Weight,
		Image:         in.Image,
		Quantity:      1,
	})
	s.persist()
}

// Remove deletes the line for the variant; no-op when absent.
func (s *CartService) Remove(variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(variantID)
	s.persist()
}

// SetQuantity sets the line's quantity. Zero or less removes the line,
// so a quantity below 1 is never persisted.
func (s *CartService) SetQuantity(variantID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(variantID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart, e.g. after a verified payment.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current lines.
func (s *CartService) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalPrice is the sum of line subtotals at current sale prices.
func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// ItemCount is the total quantity across all lines.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *CartService) removeLocked(variantID string) {
	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// persist writes the full current list under the active user's key.
// Best-effort: a failing store never fails the mutation, the in-memory
// cart stays authoritative for this session. Caller holds the lock.
func (s *CartService) persist() {
	userID := s.Session.CurrentUserID()
	if userID == "" {
		return
	}

	raw, err := json.Marshal(s.items)
	if err != nil {
		s.Log.WithError(err).Warn("could not encode cart")
		return
	}
	if err := s.Store.Set(store.Key(cartKind, userID), raw); err != nil {
		s.Log.WithError(errors.Wrap(err, "persist cart")).Warn("cart not saved")
	}
}

func (s *CartService) reload(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if userID == "" {
		return
	}

	raw, err := s.Store.Get(store.Key(cartKind, userID))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.Log.WithError(err).Warn("could not load cart")
		}
		return
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.Log.WithError(err).Warn("discarding unreadable cart")
		return
	}
	s.items = items
}
