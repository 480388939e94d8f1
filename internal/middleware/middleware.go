package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/models"
	"github.com/tmohagan/portfolio-api/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// ClaimsFromContext returns the verified session claims placed by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*models.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.SessionClaims)
	return claims, ok
}

// ContextWithClaims is used by handler tests to simulate an authenticated request.
func ContextWithClaims(ctx context.Context, claims *models.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// RequireAuth verifies the session cookie and stores the claims in the request
// context. Verification failures never reach the wrapped handler; they are
// answered with 401 here.
func RequireAuth(auth service.AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			writeUnauthorized(w, "authentication required")
			return
		}

		claims, err := auth.VerifyToken(cookie.Value)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// CORSMiddleware reflects the request origin when it is on the configured
// allowlist. Credentials stay enabled because the session rides in a cookie.
func CORSMiddleware(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, allowed := range cfg.AllowedOrigins {
				if origin == allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
					break
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
