package httpx

import (
	"context"
	"net/http"

	"github.com/strataworks/societyd/pkg/jwtx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// SessionCookieName is the httpOnly cookie carrying the session token.
const SessionCookieName = "access_token"

// AuthnMiddleware authenticates requests via the session cookie and injects
// the identity id and role into the request context.
func AuthnMiddleware(codec *jwtx.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, http.StatusUnauthorized, "authentication token is required")
				return
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				log.Warn("session token verification failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role is not in allowed.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[RoleFromCtx(r.Context())]; !ok {
				WriteError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
