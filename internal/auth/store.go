// Package auth owns the client session: it persists the token and user
// record across restarts, validates login/register responses, and keeps the
// API client's bearer token in sync with the session lifecycle.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/cashtrack/cashtrack/internal/logging"
	"github.com/cashtrack/cashtrack/internal/storage"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys for the persisted session. Both are written together on login
// and removed together on logout/expiry; the session is never half-persisted.
const (
	TokenKey = "cashtrack-auth-token"
	UserKey  = "cashtrack-auth-user"
)

// ErrInvalidResponse marks a response that was delivered successfully but
// violates the auth contract (missing token, user, or user email). It is
// distinct from *api.Error so callers can tell "server reachable but broken"
// from "server unreachable".
var ErrInvalidResponse = errors.New("invalid auth response")

type State string

const (
	StateInitializing    State = "initializing"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Store is the session state machine. Login and Register are not safe to run
// concurrently with each other (last write wins); callers are expected to
// serialize them, e.g. by disabling the submit path while a call runs.
type Store struct {
	client  api.Client
	storage storage.Storage
	log     logging.Logger

	// now is a test seam for time-dependent expiry checks.
	now func() time.Time

	mu      sync.Mutex
	state   State
	token   string
	user    *api.User
	lastErr string
}

func NewStore(client api.Client, st storage.Storage, log logging.Logger) *Store {
	return &Store{
		client:  client,
		storage: st,
		log:     log,
		now:     time.Now,
		state:   StateInitializing,
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// User returns the current session's user record, or nil.
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Err returns the last recorded failure message, empty when none.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError drops the last recorded error without touching auth state.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Restore settles the store from persisted state: authenticated when a token
// and an unexpired user record are present, unauthenticated otherwise. Stale
// or partial persisted data is cleared. An absent session is not an error.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.storage.Get(ctx, TokenKey)
	if err != nil {
		s.settleUnauthenticated(ctx)
		return fmt.Errorf("reading persisted token: %w", err)
	}
	userRaw, err := s.storage.Get(ctx, UserKey)
	if err != nil {
		s.settleUnauthenticated(ctx)
		return fmt.Errorf("reading persisted user: %w", err)
	}

	if len(token) == 0 || len(userRaw) == 0 {
		s.settleUnauthenticated(ctx)
		return nil
	}

	var user api.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		s.log.Warn(ctx, "persisted user record is corrupt, clearing session", "err", err)
		s.settleUnauthenticated(ctx)
		return nil
	}

	if user.Expiration <= s.now().Unix() || s.tokenExpired(string(token)) {
		s.log.Info(ctx, "persisted session expired, clearing", "email", user.Email)
		s.settleUnauthenticated(ctx)
		return nil
	}

	s.client.SetAuthToken(string(token))

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = string(token)
	s.user = &user
	s.lastErr = ""
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "email", user.Email)
	return nil
}

// tokenExpired reports whether the token is a JWT whose exp claim is in the
// past. Opaque or unparseable tokens are not treated as expired; the user
// record's expiration stays authoritative for those.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}

// Login authenticates against the backend. On success the session is
// persisted, the API client's token is set, and a best-effort InitUser call
// runs (its failure is logged and swallowed). On any failure the in-memory
// session is cleared, the message recorded, and the error returned.
func (s *Store) Login(ctx context.Context, creds api.LoginRequest) error {
	resp, err := s.client.Login(ctx, creds)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := validateLoginResponse(resp); err != nil {
		return s.fail(ctx, err)
	}

	if err := s.persistSession(ctx, resp.Token, resp.User); err != nil {
		return s.fail(ctx, err)
	}

	s.client.SetAuthToken(resp.Token)

	if err := s.client.InitUser(ctx); err != nil {
		s.log.Warn(ctx, "post-login init failed, continuing", "err", err)
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = resp.Token
	s.user = resp.User
	s.lastErr = ""
	s.mu.Unlock()

	s.log.Info(ctx, "login successful", "email", resp.User.Email)
	return nil
}

// Register creates an account and then logs in with the same credentials;
// registration alone does not yield a session token.
func (s *Store) Register(ctx context.Context, data api.RegisterRequest) error {
	resp, err := s.client.Register(ctx, data)
	if err != nil {
		return s.fail(ctx, err)
	}

	if resp == nil || resp.Message == "" {
		return s.fail(ctx, fmt.Errorf("%w: no confirmation message from register", ErrInvalidResponse))
	}

	return s.Login(ctx, api.LoginRequest{Email: data.Email, Password: data.Password})
}

// Logout clears the persisted session and the client token. It always leaves
// the store unauthenticated; storage failures are logged, not returned.
func (s *Store) Logout(ctx context.Context) {
	s.settleUnauthenticated(ctx)
	s.log.Info(ctx, "logged out")
}

// fail resets the in-memory session, records a human-readable message, and
// hands the error back to the caller. Persisted state is left alone so an
// unrelated failure cannot wipe a previously valid session on disk.
func (s *Store) fail(ctx context.Context, err error) error {
	s.mu.Lock()
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}

func (s *Store) settleUnauthenticated(ctx context.Context) {
	if err := s.storage.Delete(ctx, TokenKey); err != nil {
		s.log.Warn(ctx, "failed to clear persisted token", "err", err)
	}
	if err := s.storage.Delete(ctx, UserKey); err != nil {
		s.log.Warn(ctx, "failed to clear persisted user", "err", err)
	}
	s.client.SetAuthToken("")

	s.mu.Lock()
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

func (s *Store) persistSession(ctx context.Context, token string, user *api.User) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	if err := s.storage.Set(ctx, UserKey, userRaw); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}
	return nil
}

func validateLoginResponse(resp *api.LoginResponse) error {
	if resp == nil {
		return fmt.Errorf("%w: empty login response", ErrInvalidResponse)
	}
	if resp.Token == "" {
		return fmt.Errorf("%w: no token received from login", ErrInvalidResponse)
	}
	if resp.User == nil {
		return fmt.Errorf("%w: no user data received from login", ErrInvalidResponse)
	}
	if resp.User.Email == "" {
		return fmt.Errorf("%w: user email not found in login response", ErrInvalidResponse)
	}
	return nil
}
