package password

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/pkg/errors"
)

type testUser struct {
	email string
}

func (u *testUser) UserSubject() string  { return u.email }
func (u *testUser) UserProvider() string { return "local" }

func TestAuthenticate(t *testing.T) {
	provider := UserProviderFunc(func(ctx context.Context, email, password string) (authn.User, error) {
		if email == "jane@example.com" && password == "s3cr3t" {
			return &testUser{email}, nil
		}

		if email == "broken@example.com" {
			return nil, errors.New("database is down")
		}

		return nil, errors.WithStack(authn.ErrUnauthenticated)
	})

	type testCase struct {
		Email         string
		Password      string
		ExpectSuccess bool
	}

	testCases := []testCase{
		{Email: "jane@example.com", Password: "s3cr3t", ExpectSuccess: true},
		{Email: "  jane@example.com ", Password: "s3cr3t", ExpectSuccess: true},
		{Email: "jane@example.com", Password: "wrong", ExpectSuccess: false},
		{Email: "", Password: "s3cr3t", ExpectSuccess: false},
		{Email: "jane@example.com", Password: "", ExpectSuccess: false},
		{Email: "broken@example.com", Password: "s3cr3t", ExpectSuccess: false},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			form := url.Values{}
			form.Set(FieldEmail, tc.Email)
			form.Set(FieldPassword, tc.Password)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			user, err := Authenticate(r, provider)

			if !tc.ExpectSuccess {
				if !errors.Is(err, authn.ErrUnauthenticated) {
					t.Errorf("err: expected ErrUnauthenticated, got '%v'", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := "jane@example.com", user.UserSubject(); e != g {
				t.Errorf("user.UserSubject(): expected '%v', got '%v'", e, g)
			}
		})
	}
}
