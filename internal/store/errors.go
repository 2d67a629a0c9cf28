package store

import "errors"

// Sentinel errors returned by credential store implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the requested key is absent.
	ErrKeyNotFound = errors.New("credential key not found")

	// ErrUnknownDriver is returned by NewCredentialStore when the configured
	// storage driver is not one of the supported backends.
	ErrUnknownDriver = errors.New("unknown credential store driver")
)

// Low-level database operation errors wrapped by the SQLite implementation.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
