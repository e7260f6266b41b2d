package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

// sessionKey is where the current credentials live in the local store.
// It is deliberately not user-scoped: there is exactly one current
// session per profile.
const sessionKey = "session"

// State is the persisted session: the bearer token plus the profile the
// backend returned with it.
type State struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Session is the single source of truth for "who is signed in". Every
// component that needs the current user id takes it from here instead
// of reading the store directly.
type Session struct {
	store store.Store
	bus   *Broadcaster
	log   *logrus.Logger

	mu  sync.Mutex
	cur *State
}

func New(st store.Store, bus *Broadcaster, log *logrus.Logger) *Session {
	return &Session{store: st, bus: bus, log: log}
}

// Restore loads a previously saved session from the store. An expired
// token is discarded and announced as a sign-out, which is how external
// token expiry is detected between runs.
func (s *Session) Restore() {
	raw, err := s.store.Get(sessionKey)
	if err != nil {
		return
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.WithError(err).Warn("discarding unreadable session")
		_ = s.store.Delete(sessionKey)
		return
	}

	if TokenExpired(st.Token, time.Now()) {
		s.log.WithField("user", st.User.ID).Info("session expired, signing out")
		_ = s.store.Delete(sessionKey)
		s.bus.SignedOut()
		return
	}

	s.mu.Lock()
	s.cur = &st
	s.mu.Unlock()
}

// SignIn stores the new credentials and broadcasts the transition.
func (s *Session) SignIn(token string, user model.User) {
	st := State{Token: token, User: user}

	raw, err := json.Marshal(st)
	if err == nil {
		if err := s.store.Set(sessionKey, raw); err != nil {
			// Persistence is best-effort; the in-memory session still
			// carries this run.
			s.log.WithError(err).Warn("could not persist session")
		}
	}

	s.mu.Lock()
	s.cur = &st
	s.mu.Unlock()

	s.bus.SignedIn(user.ID)
}

// SignOut drops the credentials and broadcasts the transition. Calling
// it while already signed out is a no-op.
func (s *Session) SignOut() {
	s.mu.Lock()
	wasSignedIn := s.cur != nil
	s.cur = nil
	s.mu.Unlock()

	if !wasSignedIn {
		return
	}
	if err := s.store.Delete(sessionKey); err != nil {
		s.log.WithError(err).Warn("could not remove persisted session")
	}
	s.bus.SignedOut()
}

// CurrentUserID returns the signed-in user's id, or "" when signed out.
func (s *Session) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.User.ID
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// User returns the signed-in profile.
func (s *Session) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return model.User{}, false
	}
	return s.cur.User, true
}
