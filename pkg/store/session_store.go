package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/contract"
	"docintel-be/pkg/events"
)

type SessionState string

const (
	StateUnauthenticated SessionState = "UNAUTHENTICATED"
	StateAuthenticating  SessionState = "AUTHENTICATING"
	StateAuthenticated   SessionState = "AUTHENTICATED"
)

const DefaultTokenKey = "docintel_token"

type SessionConfig struct {
	TokenKey   string
	InitDelay  time.Duration
	LoginDelay time.Duration
}

// SessionStore owns the single authenticated actor of the process and its
// login/logout lifecycle. It starts in the Authenticating state until
// Initialize has resolved.
type SessionStore struct {
	mu sync.RWMutex

	user         *entity.User
	token        string
	initializing bool
	pending      int

	// epoch is bumped by Logout and Close. A wait that started in an older
	// epoch must not install a session when it completes.
	epoch     uint64
	closed    bool
	done      chan struct{}
	closeOnce sync.Once

	cfg       SessionConfig
	tokens    contract.TokenRepository
	verifier  Verifier
	clock     Clock
	logger    logger.ILogger
	publisher events.Publisher
}

func NewSessionStore(
	cfg SessionConfig,
	tokens contract.TokenRepository,
	verifier Verifier,
	clock Clock,
	log logger.ILogger,
	publisher events.Publisher,
) *SessionStore {
	if cfg.TokenKey == "" {
		cfg.TokenKey = DefaultTokenKey
	}
	if clock == nil {
		clock = RealClock
	}
	if publisher == nil {
		publisher = events.Nop
	}
	return &SessionStore{
		initializing: true,
		done:         make(chan struct{}),
		cfg:          cfg,
		tokens:       tokens,
		verifier:     verifier,
		clock:        clock,
		logger:       log,
		publisher:    publisher,
	}
}

// Initialize restores the session from a persisted token. With no token it
// resolves immediately and unauthenticated.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.mu.RLock()
	closed, epoch := s.closed, s.epoch
	s.mu.RUnlock()
	if closed {
		return ErrStoreClosed
	}
	defer s.finishInitializing()

	token, found, err := s.tokens.Get(ctx, s.cfg.TokenKey)
	if err != nil {
		s.logger.Error("SESSION", "Failed to read persisted token", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("read token: %w", err)
	}
	if !found {
		s.logger.Debug("SESSION", "No persisted token, starting unauthenticated", nil)
		return nil
	}

	if err := s.wait(ctx, s.cfg.InitDelay); err != nil {
		s.logger.Warn("SESSION", "Session restore interrupted", map[string]interface{}{"error": err.Error()})
		return err
	}

	user, err := s.verifier.Resume(token)
	if err != nil {
		s.logger.Warn("SESSION", "Persisted token rejected, discarding it", map[string]interface{}{"error": err.Error()})
		if delErr := s.tokens.Delete(ctx, s.cfg.TokenKey); delErr != nil {
			s.logger.Error("SESSION", "Failed to delete rejected token", map[string]interface{}{"error": delErr.Error()})
		}
		return nil
	}

	s.mu.Lock()
	if s.closed || s.epoch != epoch {
		s.mu.Unlock()
		s.logger.Warn("SESSION", "Discarding session restore that completed after teardown or logout", nil)
		return ErrSuperseded
	}
	if s.user != nil {
		s.mu.Unlock()
		s.logger.Info("SESSION", "Login finished first, keeping its session over the persisted token", nil)
		return nil
	}
	s.user = user
	s.token = token
	s.mu.Unlock()

	s.logger.Info("SESSION", "Session restored from persisted token", map[string]interface{}{"user_id": user.Id})
	return nil
}

// Login waits the simulated network delay and then checks the credentials.
// On mismatch it returns ErrAuthentication and installs nothing.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*entity.User, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStoreClosed
	}
	s.pending++
	epoch := s.epoch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending--
		s.mu.Unlock()
	}()

	if err := s.wait(ctx, s.cfg.LoginDelay); err != nil {
		s.logger.Warn("SESSION", "Login interrupted", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	user, token, err := s.verifier.Authenticate(email, password)
	if err != nil {
		s.logger.Warn("SESSION", "Login rejected", map[string]interface{}{"email": email})
		return nil, err
	}

	if !s.current(epoch) {
		s.logger.Warn("SESSION", "Discarding login that completed after teardown or logout", map[string]interface{}{"user_id": user.Id})
		return nil, ErrSuperseded
	}

	if err := s.tokens.Save(ctx, s.cfg.TokenKey, token); err != nil {
		s.logger.Error("SESSION", "Failed to persist token", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("persist token: %w", err)
	}

	s.mu.Lock()
	if s.closed || s.epoch != epoch {
		s.mu.Unlock()
		if delErr := s.tokens.Delete(ctx, s.cfg.TokenKey); delErr != nil {
			s.logger.Error("SESSION", "Failed to delete superseded token", map[string]interface{}{"error": delErr.Error()})
		}
		return nil, ErrSuperseded
	}
	s.user = user
	s.token = token
	s.initializing = false
	s.mu.Unlock()

	s.logger.Info("SESSION", "User logged in", map[string]interface{}{"user_id": user.Id})
	s.publisher.Publish(events.New(events.SessionLoggedIn, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	}))
	return user.Clone(), nil
}

// Logout clears the session and the persisted token regardless of prior
// state. The in-memory session is cleared even when deleting the token fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	var userID string
	if s.user != nil {
		userID = s.user.Id
	}
	s.user = nil
	s.token = ""
	s.epoch++
	s.mu.Unlock()

	if err := s.tokens.Delete(ctx, s.cfg.TokenKey); err != nil {
		s.logger.Error("SESSION", "Failed to delete persisted token", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("delete token: %w", err)
	}

	s.logger.Info("SESSION", "User logged out", map[string]interface{}{"user_id": userID})
	s.publisher.Publish(events.New(events.SessionLoggedOut, map[string]interface{}{"user_id": userID}))
	return nil
}

// Close tears the store down. Pending waits return ErrStoreClosed and no
// late completion touches the session afterwards.
func (s *SessionStore) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.initializing = false
		s.epoch++
		s.mu.Unlock()
		close(s.done)
	})
}

func (s *SessionStore) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initializing || s.pending > 0
}

func (s *SessionStore) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.user != nil:
		return StateAuthenticated
	case s.initializing || s.pending > 0:
		return StateAuthenticating
	default:
		return StateUnauthenticated
	}
}

func (s *SessionStore) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-s.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrStoreClosed
	}
}

func (s *SessionStore) current(epoch uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed && s.epoch == epoch
}

func (s *SessionStore) finishInitializing() {
	s.mu.Lock()
	s.initializing = false
	s.mu.Unlock()
}
