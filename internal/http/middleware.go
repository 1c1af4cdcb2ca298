package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "storefront_session"

// SessionMiddleware ties a browser to its cart. A request without the
// session cookie gets a fresh uuid; the cookie outlives the cart TTL so
// a returning shopper simply finds an empty cart.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			sessionID = c.Value
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), "session_id", sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value("session_id").(string); ok {
		return sessionID
	}
	return ""
}
