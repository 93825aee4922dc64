package setup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/timetrack/internal/authn/oauth2"
	"github.com/bornholm/timetrack/internal/config"
	"github.com/bornholm/timetrack/internal/store"
)

// NewOnLoginFromConfig assigns roles to identity provider users. Local
// accounts keep the role they were seeded with.
func NewOnLoginFromConfig(conf *config.Config) oauth2.OnLoginFunc {
	return func(ctx context.Context, user *store.User) error {
		if user.Provider == store.ProviderLocal {
			return nil
		}

		role := string(conf.Auth.DefaultRole)

		for _, r := range conf.Auth.Roles {
			if r.Email == "" || !strings.EqualFold(string(r.Email), user.Email) {
				continue
			}

			if r.Provider != "" && string(r.Provider) != user.Provider {
				continue
			}

			role = string(r.Role)
			break
		}

		if user.Role != role {
			slog.InfoContext(ctx, "assigning user role", slog.String("email", user.Email), slog.String("role", role))
		}

		user.Role = role

		return nil
	}
}
