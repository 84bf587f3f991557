// Package session holds the authoritative record of who is logged in and
// with what credentials. The store is safe for concurrent use and survives
// restarts through a small sqlite-backed key/value table.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloodstream/bloodstream-go/internal/dbx"
	"github.com/bloodstream/bloodstream-go/internal/logging"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// Persisted row keys. All session rows live under one table so Logout can
// wipe them in a single statement.
const (
	keyUser         = "user"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// Session is one consistent view of the auth state.
//
// Invariant: Authenticated is true if and only if both tokens are non-empty
// and a user identity is present.
type Session struct {
	User          *models.User
	AccessToken   string
	RefreshToken  string
	Authenticated bool
	Loading       bool
}

// Store is the single process-wide session holder. All mutations are atomic
// with respect to readers: Snapshot never observes a half-applied update.
type Store struct {
	mu   sync.RWMutex
	cur  Session
	subs []func(Session)

	db  *sql.DB // nil disables persistence (tests, ephemeral runs)
	log logging.Logger
}

// NewStore creates a Store persisting to db. A nil db keeps the session in
// memory only.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{db: db, log: log}
}

// Load restores a previously persisted session. A missing or incomplete
// persisted session leaves the store logged out; it is not an error.
func (s *Store) Load(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	repo := NewSQLiteRepository(s.db)

	rawUser, err := repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	access, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	refresh, err := repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return err
	}

	if len(rawUser) == 0 || len(access) == 0 || len(refresh) == 0 {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(rawUser, &u); err != nil {
		// A corrupt row must not brick the client: drop it and start clean.
		s.log.Warn(ctx, "discarding corrupt persisted session", "err", err)
		return repo.Clear(ctx)
	}

	s.mu.Lock()
	s.cur = Session{
		User:          &u,
		AccessToken:   string(access),
		RefreshToken:  string(refresh),
		Authenticated: true,
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetAuth replaces the user identity and both credentials atomically and
// marks the session authenticated. The update is persisted in a single
// transaction before subscribers are notified.
func (s *Store) SetAuth(ctx context.Context, auth models.AuthResponse) error {
	u := auth.User

	s.mu.Lock()
	loading := s.cur.Loading
	s.cur = Session{
		User:          &u,
		AccessToken:   auth.Token,
		RefreshToken:  auth.RefreshToken,
		Authenticated: true,
		Loading:       loading,
	}
	s.mu.Unlock()

	err := s.persist(ctx, &u, auth.Token, auth.RefreshToken)
	s.notify()
	return err
}

// SetUser replaces only the user identity (e.g. after a profile fetch).
// Authentication state and credentials are untouched.
func (s *Store) SetUser(ctx context.Context, u models.User) error {
	s.mu.Lock()
	s.cur.User = &u
	authenticated := s.cur.Authenticated
	s.mu.Unlock()

	var err error
	if authenticated && s.db != nil {
		raw, merr := json.Marshal(u)
		if merr != nil {
			err = fmt.Errorf("marshal user: %w", merr)
		} else {
			err = NewSQLiteRepository(s.db).Set(ctx, keyUser, raw)
		}
	}

	s.notify()
	return err
}

// Logout clears all fields atomically and wipes the persisted rows. It does
// not navigate; callers decide what happens next.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.cur = Session{}
	s.mu.Unlock()

	var err error
	if s.db != nil {
		err = NewSQLiteRepository(s.db).Clear(ctx)
	}

	s.notify()
	return err
}

// SetLoading flips the transient UI flag. Never persisted.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.cur.Loading = loading
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a consistent copy of the current session. The returned
// user is a clone; mutating it does not affect the store.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

// AccessToken returns the current access credential, or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken
}

// RefreshToken returns the current refresh credential, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.RefreshToken
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Authenticated
}

// Subscribe registers fn to run after every committed mutation. Callbacks
// receive a snapshot and must not block for long; they run on the mutating
// goroutine.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// TokenExpiry extracts the exp claim from the access token without verifying
// the signature (the server remains the authority; this is introspection
// only). ok is false when no token is present or it carries no expiry.
func (s *Store) TokenExpiry() (expiry time.Time, ok bool) {
	tok := s.AccessToken()
	if tok == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpiresWithin reports whether the access token expires within d.
// Returns false when the token has no parseable expiry.
func (s *Store) TokenExpiresWithin(d time.Duration) bool {
	exp, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return time.Until(exp) <= d
}

func (s *Store) cloneLocked() Session {
	out := s.cur
	if s.cur.User != nil {
		u := *s.cur.User
		out.User = &u
	}
	return out
}

func (s *Store) persist(ctx context.Context, u *models.User, access, refresh string) error {
	if s.db == nil {
		return nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyUser, raw); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refresh))
	})
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(Session), len(s.subs))
	copy(subs, s.subs)
	snap := s.cloneLocked()
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}
