// Package transport is the session-aware HTTP client core of the bazarly
// runtime. Every network request the application makes goes through one
// shared [Client].
//
// The client wraps each request in two explicit stages: an outbound stage
// that attaches the persisted bearer token to non-auth requests, and an
// inbound stage that converts failures into the classified error taxonomy
// ([Error]) and erases the persisted token when the server reports an expired
// session. Both stages are plain methods with explicit inputs and outputs so
// they can be unit-tested without a live HTTP stack.
//
// Auth endpoints (login, register, OTP verify/resend, password reset) are
// exempt from both credential attachment and session invalidation: a 401
// from them means bad credentials, never an expired session.
package transport
