package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Kind is the stable classification of a transport or HTTP failure. UI code
// branches on Kind (and Retryable) instead of raw status codes.
type Kind string

const (
	KindNetwork            Kind = "network"
	KindBadRequest         Kind = "bad_request"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindValidation         Kind = "validation"
	KindRateLimited        Kind = "rate_limited"
	KindServerError        Kind = "server_error"
	KindServiceUnavailable Kind = "service_unavailable"
	KindSessionExpired     Kind = "session_expired"
	KindUnknown            Kind = "unknown"
)

// defaultMessages are the user-facing fallbacks used when the server response
// carries no message field.
var defaultMessages = map[Kind]string{
	KindNetwork:            "Network error. Please check your connection and try again.",
	KindBadRequest:         "The request could not be processed.",
	KindForbidden:          "You do not have permission to perform this action.",
	KindNotFound:           "The requested resource was not found.",
	KindConflict:           "The request conflicts with the current state.",
	KindValidation:         "Some fields failed validation.",
	KindRateLimited:        "Too many requests. Please try again later.",
	KindServerError:        "Something went wrong on our side. Please try again.",
	KindServiceUnavailable: "The service is temporarily unavailable. Please try again later.",
	KindSessionExpired:     "Your session has expired. Please log in again.",
	KindUnknown:            "An unexpected error occurred.",
}

// Error is the classified form of any transport or HTTP failure. It is
// immutable after creation and carries no reference to the request that
// produced it.
type Error struct {
	// Kind is the taxonomy bucket the failure falls into.
	Kind Kind
	// Message is the user-facing text: the server-provided message when one
	// was present, otherwise the per-kind default.
	Message string
	// Retryable reports whether retrying the same request may succeed.
	Retryable bool

	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error, when there is one, so
// callers can still match context.DeadlineExceeded and friends.
func (e *Error) Unwrap() error {
	return e.cause
}

// Classify maps an HTTP failure outcome to its classified error. It is a
// pure status-table lookup with no side effects; unlisted statuses map to
// [KindUnknown]. The 401 entry maps to [KindForbidden]; session expiry is
// decided by the client's inbound stage, not here, because only the inbound
// stage knows whether the target was an auth endpoint.
func Classify(status int, body []byte) *Error {
	var kind Kind
	retryable := false

	switch status {
	case http.StatusBadRequest:
		kind = KindBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindConflict
	case http.StatusUnprocessableEntity:
		kind = KindValidation
	case http.StatusTooManyRequests:
		kind = KindRateLimited
		retryable = true
	case http.StatusInternalServerError:
		kind = KindServerError
		retryable = true
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		kind = KindServiceUnavailable
		retryable = true
	default:
		kind = KindUnknown
	}

	message := serverMessage(body)
	if message == "" {
		message = defaultMessages[kind]
	}

	return &Error{Kind: kind, Message: message, Retryable: retryable}
}

// NetworkError classifies an outcome with no HTTP response at all: the
// request never reached a server, the connection failed, or it timed out.
func NetworkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: defaultMessages[KindNetwork], Retryable: true, cause: cause}
}

func sessionExpiredError() *Error {
	return &Error{Kind: KindSessionExpired, Message: defaultMessages[KindSessionExpired]}
}

// serverMessage extracts the server-provided message field from an error
// body, trying "message" then "error". Returns "" when neither is a string.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	v := gjson.ParseBytes(body)
	for _, key := range []string{"message", "error"} {
		if f := v.Get(key); f.Type == gjson.String && f.Str != "" {
			return f.Str
		}
	}

	return ""
}

// AsError unwraps err into a classified *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// MessageOf returns the user-facing message of a classified error, or
// err.Error() for anything else. Session-level code uses it to build result
// values that never expose raw transport errors.
func MessageOf(err error) string {
	if e, ok := AsError(err); ok {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
