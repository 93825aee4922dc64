package identity

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

var ErrNoSession = errors.New("no session")

// User is the identity of the person behind the current session
type User struct {
	DisplayName string
	Email       string
	Role        string
}

// Service gives access to the identity bound to a session
type Service interface {
	// CurrentUser returns the session's user, or an error
	// (ErrNoSession when nobody is signed in)
	CurrentUser(ctx context.Context) (*User, error)
	// EndSession terminates the session
	EndSession(ctx context.Context) error
}

// Binder creates identity services bound to an HTTP exchange
type Binder interface {
	Identity(w http.ResponseWriter, r *http.Request) Service
}

type BinderFunc func(w http.ResponseWriter, r *http.Request) Service

func (fn BinderFunc) Identity(w http.ResponseWriter, r *http.Request) Service {
	return fn(w, r)
}
