package transport

import (
	"net/url"
	"strings"
)

// authEndpoints is the fixed allow-list of path fragments identifying auth
// endpoints. Matching is by substring, so both "/auth/login" and
// "/api/v2/auth/login" qualify.
var authEndpoints = []string{
	"/auth/login",
	"/auth/register",
	"/auth/verify-otp",
	"/auth/resend-otp",
	"/auth/forgot-password",
	"/auth/reset-password",
}

// isAuthEndpoint reports whether path targets one of the auth endpoints that
// must never receive a bearer token and whose 401 responses are never treated
// as session expiry.
func isAuthEndpoint(path string) bool {
	for _, fragment := range authEndpoints {
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}

// Descriptor describes one request about to pass through the client. One
// value is created per call and discarded afterwards.
type Descriptor struct {
	// Method is the HTTP verb.
	Method string
	// Path is the endpoint path relative to the configured base URL.
	Path string
	// Query holds optional query parameters for GET-style requests.
	Query url.Values
	// Body is the optional JSON body for write requests.
	Body any
	// IsAuth marks requests against the auth allow-list. Derived from Path
	// at construction; it controls both credential attachment and 401
	// handling.
	IsAuth bool

	// retried guards the session-invalidation side effect: once the inbound
	// stage has erased the token for this request, a second pass over the
	// same failure must not touch the store again.
	retried bool
}

// NewDescriptor builds a Descriptor for the given verb and path, deriving
// IsAuth from the allow-list.
func NewDescriptor(method, path string) *Descriptor {
	return &Descriptor{
		Method: method,
		Path:   path,
		IsAuth: isAuthEndpoint(path),
	}
}
