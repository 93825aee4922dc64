package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/identity"
)

type testUser struct {
	role string
}

func (u *testUser) UserSubject() string  { return "subject" }
func (u *testUser) UserProvider() string { return "test" }
func (u *testUser) Identity() *identity.User {
	return &identity.User{DisplayName: "Test", Role: u.role}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := RequireRole("admin")(next)

	serve := func(user authn.User) int {
		r := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
		if user != nil {
			r = r.WithContext(authn.WithContextUser(r.Context(), user))
		}

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		return w.Code
	}

	if e, g := http.StatusUnauthorized, serve(nil); e != g {
		t.Errorf("anonymous: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusForbidden, serve(&testUser{role: "employee"}); e != g {
		t.Errorf("employee: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNoContent, serve(&testUser{role: "admin"}); e != g {
		t.Errorf("admin: expected '%v', got '%v'", e, g)
	}
}
