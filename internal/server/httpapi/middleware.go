package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// sessionToken extracts the session token from the Authorization header,
// falling back to the token cookie set at login.
func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
	}

	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}

	return ""
}

// withAuth verifies the session token and attaches the user id to the
// request context.
func (s *HTTPServer) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			s.writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := s.services.Users.Authenticate(token)
		if err != nil {
			s.writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
