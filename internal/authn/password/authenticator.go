package password

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

type UserProvider interface {
	Authenticate(ctx context.Context, email, password string) (authn.User, error)
}

type UserProviderFunc func(ctx context.Context, email, password string) (authn.User, error)

func (fn UserProviderFunc) Authenticate(ctx context.Context, email, password string) (authn.User, error) {
	return fn(ctx, email, password)
}

// Authenticate checks the credentials posted by the login form. It returns
// authn.ErrUnauthenticated when they are missing or do not match.
func Authenticate(r *http.Request, userProvider UserProvider) (authn.User, error) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		return nil, errors.WithStack(err)
	}

	email := strings.TrimSpace(r.PostForm.Get(FieldEmail))
	password := r.PostForm.Get(FieldPassword)

	if email == "" || password == "" {
		return nil, errors.WithStack(authn.ErrUnauthenticated)
	}

	user, err := userProvider.Authenticate(ctx, email, password)
	if err != nil {
		if !errors.Is(err, authn.ErrUnauthenticated) {
			slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
		}

		return nil, errors.WithStack(authn.ErrUnauthenticated)
	}

	if user == nil {
		return nil, errors.WithStack(authn.ErrUnauthenticated)
	}

	return user, nil
}
