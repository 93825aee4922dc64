package authz_test

import (
	"fmt"
	"testing"

	"github.com/bornholm/timetrack/internal/authz"
	"github.com/bornholm/timetrack/internal/authz/expr"
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/pkg/errors"
)

func TestPolicy(t *testing.T) {
	type testCase struct {
		Page     string
		User     *identity.User
		Expected bool
	}

	admin := &identity.User{DisplayName: "Ada", Email: "ada@example.com", Role: "admin"}
	employee := &identity.User{DisplayName: "Bob", Email: "bob@other.org", Role: "employee"}

	policy := authz.NewPolicy(
		authz.NewPageRules("Employees", expr.NewRule(`hasRole(user, "admin", "manager")`)),
		authz.NewPageRules("Reports",
			expr.NewRule(`authenticated(user)`),
			expr.NewRule(`emailDomain(user) == "example.com"`),
		),
		authz.NewPageRules("Settings", expr.NewRule(`user != nil && user.role == "admin"`)),
	)

	testCases := []testCase{
		{Page: "Dashboard", User: nil, Expected: true},
		{Page: "Employees", User: nil, Expected: false},
		{Page: "Employees", User: employee, Expected: false},
		{Page: "Employees", User: admin, Expected: true},
		{Page: "Reports", User: employee, Expected: false},
		{Page: "Reports", User: admin, Expected: true},
		{Page: "Settings", User: nil, Expected: false},
		{Page: "Settings", User: admin, Expected: true},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			allowed, err := policy.Allowed(tc.Page, tc.User)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, allowed; e != g {
				t.Errorf("allowed: expected '%v', got '%v'", e, g)
			}
		})
	}

	if !policy.Restricted("Employees") {
		t.Errorf("expected 'Employees' to be restricted")
	}

	if policy.Restricted("Dashboard") {
		t.Errorf("expected 'Dashboard' not to be restricted")
	}
}

func TestInvalidRule(t *testing.T) {
	rule := expr.NewRule(`user.role ==`)

	if err := rule.Compile(); err == nil {
		t.Error("expected a compilation error")
	}

	policy := authz.NewPolicy(authz.NewPageRules("Dashboard", rule))

	if _, err := policy.Allowed("Dashboard", nil); err == nil {
		t.Error("expected an evaluation error")
	}
}

type staticRules struct {
	page  string
	rules []authz.Rule
}

func (s staticRules) Page() string {
	return s.page
}

func (s staticRules) Rules() []authz.Rule {
	return s.rules
}

func TestPolicyMergesPageRules(t *testing.T) {
	admin := expr.NewRule(`hasRole(user, "admin")`)
	authenticated := expr.NewRule(`authenticated(user)`)

	policy := authz.NewPolicy(
		authz.NewPageRules("Settings", authenticated),
		staticRules{page: "Settings", rules: []authz.Rule{admin}},
	)

	type testCase struct {
		User     *identity.User
		Expected bool
	}

	testCases := []testCase{
		{User: nil, Expected: false},
		{User: &identity.User{Email: "bob@example.com", Role: "employee"}, Expected: false},
		{User: &identity.User{Email: "ada@example.com", Role: "admin"}, Expected: true},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			allowed, err := policy.Allowed("Settings", tc.User)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, allowed; e != g {
				t.Errorf("allowed: expected '%v', got '%v'", e, g)
			}
		})
	}
}
