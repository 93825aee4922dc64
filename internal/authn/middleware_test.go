package authn

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/timetrack/internal/identity"
	"github.com/pkg/errors"
)

type testUser struct{}

func (u *testUser) UserSubject() string  { return "ada" }
func (u *testUser) UserProvider() string { return "local" }

type testIdentityUser struct {
	testUser
}

func (u *testIdentityUser) Identity() *identity.User {
	return &identity.User{DisplayName: "Ada Lovelace", Role: "admin"}
}

func TestChain(t *testing.T) {
	anonymous := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, nil
	})

	known := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return &testUser{}, nil
	})

	rejected := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, errors.WithStack(ErrUnauthenticated)
	})

	failing := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, errors.New("session store unavailable")
	})

	cancel := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return nil, errors.WithStack(ErrCancel)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := ContextUser(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("X-User", user.UserSubject())
		w.WriteHeader(http.StatusNoContent)
	})

	type testCase struct {
		Authenticators  []Authenticator
		OnAuthenticated OnAuthenticatedFunc
		ExpectedCode    int
		ExpectedUser    string
	}

	testCases := []testCase{
		{Authenticators: []Authenticator{anonymous, known}, ExpectedCode: http.StatusNoContent, ExpectedUser: "ada"},
		{Authenticators: []Authenticator{anonymous}, ExpectedCode: http.StatusUnauthorized},
		{Authenticators: []Authenticator{cancel, known}, ExpectedCode: http.StatusSeeOther},
		{Authenticators: []Authenticator{rejected, known}, ExpectedCode: http.StatusNoContent, ExpectedUser: "ada"},
		{Authenticators: []Authenticator{rejected}, ExpectedCode: http.StatusUnauthorized},
		{Authenticators: []Authenticator{failing, known}, ExpectedCode: http.StatusInternalServerError},
		{
			Authenticators: []Authenticator{known},
			OnAuthenticated: func(r *http.Request, user User) (*http.Request, error) {
				return nil, errors.New("store unavailable")
			},
			ExpectedCode: http.StatusInternalServerError,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			funcs := []MiddlewareOptionFunc{WithAuthenticators(tc.Authenticators...)}
			if tc.OnAuthenticated != nil {
				funcs = append(funcs, WithOnAuthenticated(tc.OnAuthenticated))
			}

			w := httptest.NewRecorder()
			Chain(funcs...)(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/myprofile", nil))

			if e, g := tc.ExpectedCode, w.Code; e != g {
				t.Errorf("w.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedUser, w.Header().Get("X-User"); e != g {
				t.Errorf("X-User: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestContextIdentity(t *testing.T) {
	ctx := context.Background()

	if _, err := ContextUser(ctx); !errors.Is(err, ErrNoContextUser) {
		t.Errorf("ContextUser(): expected ErrNoContextUser, got '%v'", err)
	}

	if g := ContextIdentity(ctx); g != nil {
		t.Errorf("ContextIdentity(): expected nil, got '%v'", g)
	}

	if g := ContextIdentity(WithContextUser(ctx, &testUser{})); g != nil {
		t.Errorf("ContextIdentity(): expected nil for a user without identity, got '%v'", g)
	}

	user := ContextIdentity(WithContextUser(ctx, &testIdentityUser{}))
	if user == nil {
		t.Fatal("ContextIdentity(): expected an identity")
	}

	if e, g := "admin", user.Role; e != g {
		t.Errorf("user.Role: expected '%v', got '%v'", e, g)
	}
}
