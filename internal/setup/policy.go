package setup

import (
	"context"

	"github.com/bornholm/timetrack/internal/authz"
	"github.com/bornholm/timetrack/internal/authz/expr"
	"github.com/bornholm/timetrack/internal/config"
	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/pkg/errors"
)

func NewPolicyFromConfig(ctx context.Context, conf *config.Config, model *navigation.Model) (*authz.Policy, error) {
	pages := make([]authz.Rules, 0, len(conf.Auth.Access))

	for _, a := range conf.Auth.Access {
		page := string(a.Page)

		if _, err := model.Find(page); err != nil {
			return nil, errors.Wrapf(err, "invalid access rules")
		}

		rules := make([]authz.Rule, 0, len(a.Rules))
		for _, r := range a.Rules {
			rule := expr.NewRule(r)

			if err := rule.Compile(); err != nil {
				return nil, errors.Wrapf(err, "could not compile rule '%s' of page '%s'", r, page)
			}

			rules = append(rules, rule)
		}

		pages = append(pages, authz.NewPageRules(page, rules...))
	}

	return authz.NewPolicy(pages...), nil
}
