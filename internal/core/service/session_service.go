package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

// loginFailedMessage is the generic failure message shown when the server
// supplies no detail.
const loginFailedMessage = "로그인에 실패했습니다."

// LoginPath is where forced deauthentication navigates to. The login route
// requires no authentication, so the redirect cannot loop.
const LoginPath = "/login"

// Navigator receives navigation requests from the session layer. The
// consuming router decides how to honour them.
type Navigator func(path string)

// LoginResult is what the UI layer sees after a login attempt. Failures are
// carried as a message, never as an error.
type LoginResult struct {
	Success bool
	Message string
}

// TokenClaims is the decoded (unverified) payload of the bearer token.
// Signature validation is the backend's job; the client only inspects
// claims for display and expiry checks.
type TokenClaims struct {
	Subject   string
	Username  string
	Role      domain.Role
	ExpiresAt time.Time
}

// SessionService holds the authenticated identity: the bearer token and the
// cached profile. It is anonymous iff the token is empty; the profile is
// only meaningful while a token is present. Both are persisted to durable
// storage on every mutation, so a restart resumes the session.
type SessionService struct {
	gateway  ports.AuthGateway
	store    ports.KeyValue
	log      zerolog.Logger
	navigate Navigator

	mu    sync.RWMutex
	token string
	user  *domain.User
}

// NewSessionService builds a SessionService, restoring any persisted
// session from store. A corrupt persisted profile is discarded silently.
func NewSessionService(gateway ports.AuthGateway, store ports.KeyValue, log zerolog.Logger) *SessionService {
	s := &SessionService{gateway: gateway, store: store, log: log}

	if tok, ok := store.Get(ports.StorageKeyToken); ok && tok != "" {
		s.token = tok
		if raw, ok := store.Get(ports.StorageKeyUser); ok {
			var u domain.User
			if err := json.Unmarshal([]byte(raw), &u); err == nil {
				s.user = &u
			}
		}
	}
	return s
}

// SetNavigator installs the navigation callback used on forced
// deauthentication. Without one the session is still cleared; only the
// redirect is skipped.
func (s *SessionService) SetNavigator(nav Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigate = nav
}

// Token returns the current bearer token, or "" when anonymous. It is the
// token source wired into the HTTP client.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login authenticates and loads the profile. On any failure the session
// stays anonymous and the result carries the server-supplied detail when
// one is available.
func (s *SessionService) Login(ctx context.Context, username, password string) LoginResult {
	token, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login failed")
		return failureResult(err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.persistToken(token)

	user, err := s.gateway.Me(ctx)
	if err != nil {
		// Half-authenticated is not a state: roll the token back so the
		// session stays anonymous.
		s.log.Warn().Err(err).Msg("profile fetch after login failed")
		s.clear()
		return failureResult(err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.persistUser(user)

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("logged in")
	return LoginResult{Success: true}
}

// Logout drops the session unconditionally and removes the persisted keys.
// Synchronous; no server call.
func (s *SessionService) Logout() {
	s.clear()
	s.log.Info().Msg("logged out")
}

// FetchUser refreshes the cached profile. A no-op when anonymous. A 401
// drives the same transition as any other expired token; any other failure
// keeps the stale profile and returns the error unchanged.
func (s *SessionService) FetchUser(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return nil
	}

	user, err := s.gateway.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// The HTTP layer's hook has already cleared the session;
			// clearing again here is harmless and covers gateways
			// wired without the hook.
			s.clear()
		}
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.persistUser(user)
	return nil
}

// HandleUnauthorized is the 401 hook target: it drops the session and
// requests navigation to the login route. Idempotent; repeated 401s from
// concurrent in-flight requests clear an already-empty session and
// re-request the same redirect.
func (s *SessionService) HandleUnauthorized() {
	wasLoggedIn := s.IsLoggedIn()
	s.clear()
	if wasLoggedIn {
		s.log.Info().Msg("session expired, forcing logout")
	}

	s.mu.RLock()
	nav := s.navigate
	s.mu.RUnlock()
	if nav != nil {
		nav(LoginPath)
	}
}

// IsLoggedIn reports whether a token is present.
func (s *SessionService) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns a copy of the cached profile, or nil when none is loaded.
func (s *SessionService) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the current user's role, or "" when anonymous or when the
// profile has not been loaded.
func (s *SessionService) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// HasRole reports whether the current user has exactly the given role.
func (s *SessionService) HasRole(role domain.Role) bool {
	return s.Role() == role
}

// HasAnyRole reports whether the current user's role is in roles.
func (s *SessionService) HasAnyRole(roles ...domain.Role) bool {
	current := s.Role()
	for _, r := range roles {
		if current == r {
			return true
		}
	}
	return false
}

// TokenClaims decodes the bearer token's claims without verifying the
// signature. Returns nil when anonymous.
func (s *SessionService) TokenClaims() (*TokenClaims, error) {
	tok := s.Token()
	if tok == "" {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if v, ok := claims["username"].(string); ok {
		out.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = domain.Role(v)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// clear resets in-memory state and removes both persisted keys. Safe to
// call in any state.
func (s *SessionService) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ports.StorageKeyToken); err != nil {
		s.log.Error().Err(err).Msg("failed to delete persisted token")
	}
	if err := s.store.Delete(ports.StorageKeyUser); err != nil {
		s.log.Error().Err(err).Msg("failed to delete persisted profile")
	}
}

func (s *SessionService) persistToken(token string) {
	if err := s.store.Set(ports.StorageKeyToken, token); err != nil {
		s.log.Error().Err(err).Msg("failed to persist token")
	}
}

func (s *SessionService) persistUser(user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode profile")
		return
	}
	if err := s.store.Set(ports.StorageKeyUser, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("failed to persist profile")
	}
}

func failureResult(err error) LoginResult {
	msg := domain.ErrorDetail(err)
	if msg == "" {
		msg = loginFailedMessage
	}
	return LoginResult{Success: false, Message: msg}
}
