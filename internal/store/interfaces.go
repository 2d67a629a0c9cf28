package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// Fixed keys used by the session manager and the transport layer. These are
// the only keys ever written to a credential store.
const (
	// KeyAuthToken holds the opaque bearer token string.
	KeyAuthToken = "auth_token"
	// KeyUserProfile holds the serialized user profile JSON.
	KeyUserProfile = "user_profile"
)

// CredentialStore is the persisted key-value store for authentication state.
// Implementations must be durable across process restarts and atomic at
// single-key granularity; no cross-key transactions are required.
//
// All operations may fail. Callers in this codebase treat a failed Get as
// "absent" and a failed Set/Delete as tolerable (logged, not propagated), so
// implementations should not panic and should keep errors descriptive.
type CredentialStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound when the key
	// has never been set or has been deleted.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
