package authn

import (
	"context"

	"github.com/bornholm/timetrack/internal/identity"
	"github.com/pkg/errors"
)

type contextKey string

const contextKeyUser contextKey = "authnUser"

var ErrNoContextUser = errors.New("no user in context")

// IdentityProvider is implemented by the users exposing their application
// identity, role included
type IdentityProvider interface {
	Identity() *identity.User
}

func ContextUser(ctx context.Context) (User, error) {
	user, ok := ctx.Value(contextKeyUser).(User)
	if !ok || user == nil {
		return nil, errors.WithStack(ErrNoContextUser)
	}

	return user, nil
}

// ContextIdentity returns the identity of the authenticated user, nil when
// the request is anonymous or the user has no identity
func ContextIdentity(ctx context.Context) *identity.User {
	user, err := ContextUser(ctx)
	if err != nil {
		return nil
	}

	return Identity(user)
}

func Identity(user User) *identity.User {
	provider, ok := user.(IdentityProvider)
	if !ok {
		return nil
	}

	return provider.Identity()
}

func WithContextUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}
