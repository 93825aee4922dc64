package expr

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/conf"
	"github.com/pkg/errors"
)

// WithRuleAPI exposes the helpers available to access rules:
//
//	hasRole(user, "admin", "manager")
//	emailDomain(user) == "example.com"
//	authenticated(user)
func WithRuleAPI() expr.Option {
	return func(c *conf.Config) {
		for _, opt := range []expr.Option{
			expr.Function("hasRole", hasRole),
			expr.Function("emailDomain", emailDomain),
			expr.Function("authenticated", authenticated),
		} {
			opt(c)
		}
	}
}

func hasRole(params ...any) (any, error) {
	if len(params) < 1 {
		return false, errors.New("hasRole: missing user parameter")
	}

	role, ok := userField(params[0], "role")
	if !ok {
		return false, nil
	}

	for _, p := range params[1:] {
		expected, ok := p.(string)
		if !ok {
			return false, errors.Errorf("hasRole: unexpected role type '%T'", p)
		}

		if expected == role {
			return true, nil
		}
	}

	return false, nil
}

func emailDomain(params ...any) (any, error) {
	if len(params) != 1 {
		return "", errors.New("emailDomain: expected one parameter")
	}

	email, ok := userField(params[0], "email")
	if !ok {
		return "", nil
	}

	_, domain, found := strings.Cut(email, "@")
	if !found {
		return "", nil
	}

	return strings.ToLower(domain), nil
}

func authenticated(params ...any) (any, error) {
	if len(params) != 1 {
		return false, errors.New("authenticated: expected one parameter")
	}

	user, ok := params[0].(map[string]any)

	return ok && user != nil, nil
}

func userField(raw any, field string) (string, bool) {
	user, ok := raw.(map[string]any)
	if !ok || user == nil {
		return "", false
	}

	value, ok := user[field].(string)

	return value, ok
}
