package authz

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/bornholm/timetrack/internal/authn"
)

// RequireRole only lets through requests whose authenticated user holds
// one of the given roles. It must be mounted behind authn.Chain.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if _, err := authn.ContextUser(ctx); err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			user := authn.ContextIdentity(ctx)
			if user == nil || !slices.Contains(roles, user.Role) {
				slog.DebugContext(ctx, "role not allowed", slog.Any("roles", roles))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
