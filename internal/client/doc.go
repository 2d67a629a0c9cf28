// Package client assembles the session-aware marketplace runtime: credential
// store, HTTP transport, domain services, session manager, and the background
// profile refresh job, wired into a single process lifecycle.
package client
