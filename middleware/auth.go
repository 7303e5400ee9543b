package middleware

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/homehunt-ie/backend/controllers"
	"github.com/homehunt-ie/backend/session"
)

// Auth resolves the session cookie and injects the user id into the request
// context. Requests without a valid session get 401.
func Auth(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				log.Printf("Missing session cookie for request %s %s", r.Method, r.URL)
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if err != session.ErrNotFound {
					log.Printf("Error loading session: %v", err)
				}
				http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserIDKey, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
