// AngelaMos | 2026
// session.go

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	RequestIDKey contextKey = "request_id"
)

type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (core.Principal, error)
}

// Session attaches the principal bound to the session cookie. Requests
// without a valid session continue as anonymous.
func Session(
	resolver SessionResolver,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.ResolveSession(r.Context(), c.Value)
			if err != nil {
				slog.WarnContext(r.Context(), "session lookup failed",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetPrincipal(r.Context()).IsAuthenticated() {
			core.Unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePage sends anonymous visitors to target instead of answering 401.
func RequirePage(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetPrincipal(r.Context()).IsAuthenticated() {
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithPrincipal(ctx context.Context, p core.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) core.Principal {
	if p, ok := ctx.Value(PrincipalKey).(core.Principal); ok {
		return p
	}
	return core.Anonymous()
}

func GetUserID(ctx context.Context) int64 {
	return GetPrincipal(ctx).UserID
}
