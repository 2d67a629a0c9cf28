package mockapi

import (
	"context"
	"net/http"

	"github.com/bazarly/bazarly-go/internal/utils"
)

type ctxKey int

const userIDKey ctxKey = iota

// requireAuth resolves the bearer token to a user ID and stores it in the
// request context. Missing or unknown tokens get a 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.writeMessage(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		s.mu.Lock()
		userID, ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			s.writeMessage(w, http.StatusUnauthorized, "Session is not valid")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func bearerToken(r *http.Request) string {
	return utils.StripBearerPrefix(r.Header.Get("Authorization"))
}

func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write response")
	}
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, map[string]string{"message": message}, status)
}
