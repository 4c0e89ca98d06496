// Package session holds the authenticated identity, bearer token, and role
// for the running client. The session is the only durable entity: it is
// persisted under a single namespaced key and rehydrated on start, while
// every entity cache reinitializes empty. Until rehydration completes the
// store reports unauthenticated, so an early guard evaluation can redirect
// to login but never falsely admit.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/client/repositories/state"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// StateKey is the single namespaced key the session persists under.
const StateKey = "crm-panel/session"

// signOutTimeout bounds the fire-and-forget remote sign-out.
const signOutTimeout = 5 * time.Second

// SignOutFunc revokes a session credential on the backend. The token is
// passed explicitly because local state is already cleared when it runs.
type SignOutFunc func(ctx context.Context, token string) error

// Store is the process-wide session holder. All mutation funnels through
// Login, Logout, and UpdateRole; the authenticated-iff-user-and-token
// invariant is enforced on every transition.
type Store struct {
	mu       sync.RWMutex
	cur      models.Session
	hydrated bool

	repo    state.Repository
	signOut SignOutFunc
	log     logging.Logger
}

func NewStore(repo state.Repository, signOut SignOutFunc, log logging.Logger) *Store {
	return &Store{repo: repo, signOut: signOut, log: log}
}

// Hydrate loads the persisted session, if any. It must run before any route
// renders. A missing, malformed, or expired record leaves the store signed
// out rather than failing startup; only repository errors propagate.
func (s *Store) Hydrate(ctx context.Context) error {
	data, err := s.repo.Get(ctx, StateKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	var loaded models.Session
	if data != nil {
		if err := json.Unmarshal(data, &loaded); err != nil {
			s.log.Warn(ctx, "discarding malformed persisted session", "error", err)
			loaded = models.Session{}
		}
	}

	if loaded.Token != "" && tokenExpired(loaded.Token) {
		s.log.Info(ctx, "persisted session token expired, signing out")
		loaded = models.Session{}
		if err := s.repo.Delete(ctx, StateKey); err != nil {
			s.log.Warn(ctx, "clearing expired session", "error", err)
		}
	}

	loaded.IsAuthenticated = loaded.Authenticated()

	s.mu.Lock()
	s.cur = loaded
	s.hydrated = true
	s.mu.Unlock()

	if loaded.IsAuthenticated {
		s.log.Info(ctx, "session rehydrated", "user", loaded.User.ID, "role", loaded.Role)
	}
	return nil
}

// Hydrated reports whether rehydration has completed. The guard treats a
// non-hydrated store as unauthenticated.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Login records a successful authentication. Calling again with different
// values overwrites the previous session. An empty role is derived from the
// token's role claim when one is present.
func (s *Store) Login(ctx context.Context, user *models.User, token string, role models.Role) error {
	if role == "" {
		if r, err := RoleFromToken(token); err == nil {
			role = r
		}
	}

	next := models.Session{User: user, Token: token, Role: role}
	next.IsAuthenticated = next.Authenticated()

	s.mu.Lock()
	s.cur = next
	s.hydrated = true
	s.mu.Unlock()

	return s.persist(ctx, next)
}

// Logout clears all session fields unconditionally and then issues a
// fire-and-forget sign-out to the backend; a failed remote sign-out never
// blocks or undoes the local clear.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	prev := s.cur
	s.cur = models.Session{}
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, StateKey); err != nil {
		s.log.Warn(ctx, "clearing persisted session", "error", err)
	}

	if s.signOut == nil || prev.Token == "" {
		return
	}
	go func(token string) {
		ctx, cancel := context.WithTimeout(context.Background(), signOutTimeout)
		defer cancel()
		if err := s.signOut(ctx, token); err != nil {
			s.log.Warn(ctx, "remote sign-out failed", "error", err)
		}
	}(prev.Token)
}

// UpdateRole overwrites the role only, for when the backend reports a role
// change without a full re-login.
func (s *Store) UpdateRole(ctx context.Context, role models.Role) error {
	s.mu.Lock()
	s.cur.Role = role
	next := s.cur
	s.mu.Unlock()

	if !next.Authenticated() {
		return nil
	}
	return s.persist(ctx, next)
}

// Current returns a snapshot of the session.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Store) persist(ctx context.Context, sess models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, StateKey, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// AccessToken implements gateway.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

// UserID implements gateway.TokenSource.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur.User == nil {
		return ""
	}
	return s.cur.User.ID
}
