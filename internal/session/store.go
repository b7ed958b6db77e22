// Package session owns the authenticated session of the LuxeBid
// client: who is logged in, under which credential, and for how long
// the pair persists across process restarts.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/luxebid/luxebid/internal/store"
	"github.com/luxebid/luxebid/pkg/luxebid"
	"github.com/luxebid/luxebid/pkg/model"
)

// AuthAPI is the slice of the API client the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*luxebid.LoginResult, error)
}

// Store is the single source of truth for "who is logged in". It is
// an explicitly constructed instance, injected wherever session state
// is read, and holds the invariant that user and credential are set
// and cleared together.
type Store struct {
	mu   sync.Mutex
	sess *model.Session

	api     AuthAPI
	persist store.Store
	logger  *slog.Logger
}

// NewStore creates a session store backed by the given API client and
// durable persistence.
func NewStore(api AuthAPI, persist store.Store, logger *slog.Logger) *Store {
	return &Store{
		api:     api,
		persist: persist,
		logger:  logger.With("component", "session"),
	}
}

// Restore loads a previously persisted session into memory, so a new
// process does not force re-login. No backend call is made; a stale
// credential is discovered on first use.
func (s *Store) Restore(ctx context.Context) error {
	sess, err := s.persist.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if sess == nil || sess.User == nil || sess.Token == "" {
		return nil
	}

	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()

	s.logger.Debug("session restored", "email", sess.User.Email, "role", sess.Role())
	return nil
}

// Login authenticates against the backend and, on success, stores the
// user and credential together, persisting them durably. Field-level
// validation failures and invalid-credential errors come back to the
// caller without touching the current session state.
func (s *Store) Login(ctx context.Context, email, password string) (*model.User, error) {
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		User:      &result.User,
		Token:     result.Token,
		Refresh:   result.Refresh,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()

	if err := s.persist.SaveSession(ctx, sess); err != nil {
		// The in-memory session is still valid; persistence failure
		// only costs the reload-survival property.
		s.logger.Warn("session persist failed", "error", err)
	}

	s.logger.Info("logged in", "email", result.User.Email, "role", sess.Role())
	return sess.User, nil
}

// Logout clears the user and credential from memory and durable
// storage. In-flight requests are not cancelled; they carry the
// credential snapshot taken at their dispatch time.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.sess = nil
	s.mu.Unlock()

	if err := s.persist.DeleteSession(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

// Current returns the in-memory session, or nil when logged out.
func (s *Store) Current() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// CurrentUser returns the logged-in user, or nil.
func (s *Store) CurrentUser() *model.User {
	if sess := s.Current(); sess != nil {
		return sess.User
	}
	return nil
}

// Token implements luxebid.CredentialSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return ""
	}
	return s.sess.Token
}

// Invalidate implements luxebid.CredentialSource. It clears the
// session only if token is still the current credential, so repeated
// 401s for the same stale credential clear the store exactly once.
func (s *Store) Invalidate(token string) bool {
	s.mu.Lock()
	if s.sess == nil || s.sess.Token != token {
		s.mu.Unlock()
		return false
	}
	s.sess = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.persist.DeleteSession(ctx); err != nil {
		s.logger.Warn("clear persisted session failed", "error", err)
	}
	return true
}
