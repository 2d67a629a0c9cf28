package models

// SessionState is the lifecycle state of the client's authentication session.
type SessionState int

const (
	// SessionUnknown is the state at process start, before the persisted
	// credentials have been examined.
	SessionUnknown SessionState = iota

	// SessionLoading means an auth operation (rehydrate, login, register,
	// logout) is in flight and the final state is not yet known.
	SessionLoading

	// SessionAuthenticated means a credential token is persisted and a user
	// profile is held in memory.
	SessionAuthenticated

	// SessionUnauthenticated means no credential token is persisted.
	SessionUnauthenticated
)

// String returns the lowercase state name for logging.
func (s SessionState) String() string {
	switch s {
	case SessionUnknown:
		return "unknown"
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Session is a snapshot of the authentication state. Invariant:
// State == SessionAuthenticated implies User != nil and a token exists in the
// credential store; State == SessionUnauthenticated implies no token persisted.
type Session struct {
	State SessionState
	User  *UserProfile
}
