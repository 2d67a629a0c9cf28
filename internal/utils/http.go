package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// tokenHeaderNames is the fixed, ordered list of response-header names the
// backend has been observed to use for the issued bearer token. The list is
// checked with exact (case-sensitive) map lookups and the first match wins;
// canonical MIME casing comes first because that is what net/http produces
// when it parses a response.
var tokenHeaderNames = []string{
	"Authorization",
	"authorization",
	"X-Auth-Token",
	"x-auth-token",
	"Token",
	"token",
}

// ExtractToken scans header for the issued bearer token using the fixed
// header-name order above. A "Bearer " prefix is stripped when present.
// Returns an empty string when no candidate header carries a value.
func ExtractToken(header http.Header) string {
	for _, name := range tokenHeaderNames {
		values := header[name]
		if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
			continue
		}
		return StripBearerPrefix(values[0])
	}

	return ""
}

// StripBearerPrefix removes a leading "Bearer " scheme marker from a token
// header value. Values without the marker are returned trimmed but otherwise
// unchanged, since some backends send the bare token.
func StripBearerPrefix(value string) string {
	value = strings.TrimSpace(value)
	if rest, ok := strings.CutPrefix(value, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return value
}

// WriteJSON serializes data to JSON and writes it to w with the given status
// code, setting Content-Type to application/json. If marshaling fails it
// responds with 500 and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
