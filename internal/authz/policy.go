package authz

import (
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/pkg/errors"
)

// Policy maps route keys to the rules a user must satisfy to open the
// matching page. Pages without rules are public.
type Policy struct {
	pages map[string][]Rule
}

// PageRules binds rules to a route key.
type PageRules struct {
	page  string
	rules []Rule
}

func (p *PageRules) Page() string {
	return p.page
}

// Rules implements Rules.
func (p *PageRules) Rules() []Rule {
	return p.rules
}

var _ Rules = &PageRules{}

func NewPageRules(page string, rules ...Rule) *PageRules {
	return &PageRules{page, rules}
}

// Allowed evaluates every rule bound to the page. All of them must
// return true.
func (p *Policy) Allowed(page string, user *identity.User) (bool, error) {
	rules, exists := p.pages[page]
	if !exists || len(rules) == 0 {
		return true, nil
	}

	for _, r := range rules {
		allowed, err := r.Exec(Env(page, user))
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (p *Policy) Restricted(page string) bool {
	return len(p.pages[page]) > 0
}

func NewPolicy(pages ...Rules) *Policy {
	policy := &Policy{
		pages: make(map[string][]Rule),
	}

	for _, p := range pages {
		policy.pages[p.Page()] = append(policy.pages[p.Page()], p.Rules()...)
	}

	return policy
}

// Env builds the rule environment. The user entry is nil for anonymous
// visitors.
func Env(page string, user *identity.User) map[string]any {
	env := map[string]any{
		"page": page,
		"user": nil,
	}

	if user != nil {
		env["user"] = map[string]any{
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
		}
	}

	return env
}
