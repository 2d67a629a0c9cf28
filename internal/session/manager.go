package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/store"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// loginMarker is the substring of the server's login message that confirms
// the credentials were accepted. Responses without it are treated as
// failures even when they arrive with a 2xx status.
const loginMarker = "logged in"

// Result is the uniform outcome of every manager operation. Operations never
// return a Go error to the caller; failures are reported through Success and
// Error so the consuming layer has exactly one control-flow shape to handle.
type Result struct {
	// Success reports whether the operation achieved its goal.
	Success bool
	// Data carries the decoded server payload on success, nil otherwise.
	Data *models.AuthResult
	// Error carries the server or classified message on failure.
	Error string
}

func failure(err error) Result {
	return Result{Error: transport.MessageOf(err)}
}

// Manager owns the in-memory authentication state machine and keeps it in
// step with the persisted credentials. One instance exists per process;
// callers are expected to serialize Login/Register/Logout themselves (the
// manager signals an operation in flight by entering SessionLoading but does
// not queue concurrent calls).
type Manager struct {
	auth   AuthGateway
	creds  store.CredentialStore
	logger *logger.Logger

	mu    sync.RWMutex
	state models.SessionState
	user  *models.UserProfile
}

// NewManager returns a Manager in the SessionUnknown state. Rehydrate must be
// called once at startup before the session is consulted.
func NewManager(auth AuthGateway, creds store.CredentialStore, log *logger.Logger) *Manager {
	return &Manager{
		auth:   auth,
		creds:  creds,
		logger: log,
		state:  models.SessionUnknown,
	}
}

// Snapshot returns the current session state and user profile.
func (m *Manager) Snapshot() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return models.Session{State: m.state, User: m.user}
}

// State returns the current session state.
func (m *Manager) State() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// User returns the current user profile, nil unless authenticated.
func (m *Manager) User() *models.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user
}

// Rehydrate restores the session from the credential store. It resolves to
// SessionAuthenticated only when both a token and a cached profile are
// present and the profile decodes; every failure path resolves to
// SessionUnauthenticated, never leaving the manager in SessionLoading.
func (m *Manager) Rehydrate(ctx context.Context) {
	m.setState(models.SessionLoading)

	if _, err := m.creds.Get(ctx, store.KeyAuthToken); err != nil {
		m.logger.Debug().Msg("rehydrate: no persisted token")
		m.setUnauthenticated()
		return
	}

	raw, err := m.creds.Get(ctx, store.KeyUserProfile)
	if err != nil {
		m.logger.Debug().Msg("rehydrate: token present but no cached profile")
		m.setUnauthenticated()
		return
	}

	var user models.UserProfile
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Warn().Err(err).Msg("rehydrate: cached profile is corrupt")
		m.setUnauthenticated()
		return
	}

	m.setAuthenticated(&user)
	m.logger.Info().Str("user_id", user.ID).Msg("session rehydrated")
}

// Login authenticates against the remote service. The session becomes
// SessionAuthenticated only when the response carries the login confirmation
// message, a user record, and a bearer token; any other shape or a classified
// error resolves to SessionUnauthenticated with a failure result.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) Result {
	m.setState(models.SessionLoading)

	res, err := m.auth.Login(ctx, req)
	if err != nil {
		m.logger.Debug().Str("error", transport.MessageOf(err)).Msg("login failed")
		m.setUnauthenticated()
		return failure(err)
	}

	if !strings.Contains(strings.ToLower(res.Message), loginMarker) || res.User == nil || res.Token == "" {
		m.logger.Warn().Str("message", res.Message).Msg("login response not recognized as a login confirmation")
		m.setUnauthenticated()
		return Result{Error: res.Message}
	}

	m.persistCredentials(ctx, res.Token, res.User)
	m.setAuthenticated(res.User)
	m.logger.Info().Str("user_id", res.User.ID).Msg("logged in")

	return Result{Success: true, Data: res}
}

// Register creates a pending account. A successful registration never
// authenticates the session; the caller routes through VerifyOTP and an
// explicit Login afterwards.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) Result {
	previous := m.State()
	m.setState(models.SessionLoading)

	res, err := m.auth.Register(ctx, req)

	m.setState(previous)
	if err != nil {
		return failure(err)
	}

	return Result{Success: true, Data: res}
}

// VerifyOTP submits a verification code. It never mutates session state.
func (m *Manager) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) Result {
	res, err := m.auth.VerifyOTP(ctx, req)
	if err != nil {
		return failure(err)
	}

	return Result{Success: true, Data: res}
}

// ResendOTP requests a fresh verification code. It never mutates session
// state.
func (m *Manager) ResendOTP(ctx context.Context, req models.ResendOTPRequest) Result {
	res, err := m.auth.ResendOTP(ctx, req)
	if err != nil {
		return failure(err)
	}

	return Result{Success: true, Data: res}
}

// Logout ends the session. The remote call is attempted but its outcome is
// ignored; the persisted token and profile are erased and the state becomes
// SessionUnauthenticated regardless, so a failed server call can never leave
// the client looking authenticated. Logout always reports success.
func (m *Manager) Logout(ctx context.Context) Result {
	m.setState(models.SessionLoading)

	if err := m.auth.Logout(ctx); err != nil {
		m.logger.Warn().Str("error", transport.MessageOf(err)).Msg("remote logout failed, clearing local session anyway")
	}

	m.clearCredentials(ctx)
	m.setUnauthenticated()
	m.logger.Info().Msg("logged out")

	return Result{Success: true}
}

// HandleSessionExpired is installed as the transport's session-expiry hook.
// The transport has already erased the persisted token by the time this runs;
// here the in-memory state is brought in line.
func (m *Manager) HandleSessionExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == models.SessionUnauthenticated {
		return
	}

	m.state = models.SessionUnauthenticated
	m.user = nil
	m.logger.Info().Msg("session expired, state reset")
}

// ReplaceProfile swaps the in-memory profile wholesale and refreshes the
// cached copy. Used by the background refresh job; a nil profile is ignored.
func (m *Manager) ReplaceProfile(ctx context.Context, user *models.UserProfile) {
	if user == nil {
		return
	}

	m.mu.Lock()
	if m.state != models.SessionAuthenticated {
		m.mu.Unlock()
		return
	}
	m.user = user
	m.mu.Unlock()

	if raw, err := json.Marshal(user); err == nil {
		if err = m.creds.Set(ctx, store.KeyUserProfile, string(raw)); err != nil {
			m.logger.Warn().Err(err).Msg("failed to cache refreshed profile")
		}
	}
}

func (m *Manager) setState(state models.SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

func (m *Manager) setAuthenticated(user *models.UserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.SessionAuthenticated
	m.user = user
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.SessionUnauthenticated
	m.user = nil
}

// persistCredentials writes the token and profile to the credential store.
// Store failures are logged and tolerated; the in-memory session still
// authenticates so the current process keeps working, it just will not
// survive a restart.
func (m *Manager) persistCredentials(ctx context.Context, token string, user *models.UserProfile) {
	if err := m.creds.Set(ctx, store.KeyAuthToken, token); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist token")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to encode profile")
		return
	}
	if err = m.creds.Set(ctx, store.KeyUserProfile, string(raw)); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist profile")
	}
}

func (m *Manager) clearCredentials(ctx context.Context) {
	if err := m.creds.Delete(ctx, store.KeyAuthToken); err != nil {
		m.logger.Warn().Err(err).Msg("failed to erase token")
	}
	if err := m.creds.Delete(ctx, store.KeyUserProfile); err != nil {
		m.logger.Warn().Err(err).Msg("failed to erase profile")
	}
}
