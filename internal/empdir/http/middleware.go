package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/graph"
	"github.com/aussiebroadwan/empdir/pkg/jwtx"
	"github.com/aussiebroadwan/empdir/pkg/slogx"
)

type Middleware func(http.Handler) http.Handler

// chain wraps h in the middlewares, first middleware outermost.
func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// IdentityMiddleware derives the request identity from the Authorization
// header. A missing, malformed or expired token yields an anonymous
// context; the request is never rejected here. Enforcement, if any, is
// each operation's own responsibility.
func IdentityMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := r.Header.Get("Authorization")
			if strings.HasPrefix(authz, "Bearer ") {
				raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

				claims, err := v.Verify(raw)
				if err != nil {
					slogx.FromContext(ctx).Debug("bearer token rejected, continuing anonymous", "err", err)
				} else {
					ctx = graph.WithIdentity(ctx, &domain.Identity{
						UserID:   claims.Subject,
						Username: claims.Username,
						Email:    claims.Email,
					})
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
