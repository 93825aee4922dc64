package config

import (
	"fmt"

	"github.com/bornholm/timetrack/internal/authn/oauth2"
	"github.com/goccy/go-yaml"
)

type Auth struct {
	Providers   []AuthProvider     `yaml:"providers"`
	Accounts    []Account          `yaml:"accounts"`
	Roles       []RoleAssignment   `yaml:"roles"`
	DefaultRole InterpolatedString `yaml:"defaultRole"`
	Access      []PageAccess       `yaml:"access"`
}

type AuthProvider struct {
	Type    InterpolatedString `yaml:"type"`
	Label   InterpolatedString `yaml:"label"`
	Icon    InterpolatedString `yaml:"icon"`
	Options *InterpolatedMap   `yaml:"options"`
}

type Account struct {
	Email       InterpolatedString `yaml:"email"`
	DisplayName InterpolatedString `yaml:"displayName"`
	Role        InterpolatedString `yaml:"role"`
	Password    InterpolatedString `yaml:"password"`
}

type RoleAssignment struct {
	Email    InterpolatedString `yaml:"email"`
	Provider InterpolatedString `yaml:"provider"`
	Role     InterpolatedString `yaml:"role"`
}

type PageAccess struct {
	Page  InterpolatedString      `yaml:"page"`
	Rules InterpolatedStringSlice `yaml:"rules"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Providers: []AuthProvider{
			{
				Type:  "${TIMETRACK_AUTH_OIDC_TYPE:-oidc}",
				Label: "${TIMETRACK_AUTH_OIDC_LABEL:-OpenID Connect}",
				Icon:  "${TIMETRACK_AUTH_OIDC_ICON:-fa-openid}",
				Options: &InterpolatedMap{
					Data: map[string]any{
						"key":          "${TIMETRACK_AUTH_OIDC_KEY:-}",
						"secret":       "${TIMETRACK_AUTH_OIDC_SECRET:-}",
						"discoveryUrl": "${TIMETRACK_AUTH_OIDC_DISCOVERY_URL:-}",
						"scopes":       []any{"openid", "email", "profile"},
					},
				},
			},
		},
		Accounts: []Account{
			{
				Email:       "${TIMETRACK_ADMIN_EMAIL:-}",
				DisplayName: "${TIMETRACK_ADMIN_DISPLAY_NAME:-Administrator}",
				Role:        "admin",
				Password:    "${TIMETRACK_ADMIN_PASSWORD:-}",
			},
		},
		Roles: []RoleAssignment{
			{
				Email:    "${TIMETRACK_AUTH_MANAGER_EMAIL:-}",
				Provider: "openid-connect",
				Role:     "manager",
			},
		},
		DefaultRole: "${TIMETRACK_AUTH_DEFAULT_ROLE:-employee}",
		Access: []PageAccess{
			{
				Page:  "Employees",
				Rules: InterpolatedStringSlice{`hasRole(user, "admin", "manager")`},
			},
			{
				Page:  "Reports",
				Rules: InterpolatedStringSlice{`hasRole(user, "admin", "manager")`},
			},
			{
				Page:  "Settings",
				Rules: InterpolatedStringSlice{`hasRole(user, "admin")`},
			},
		},
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"": []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".providers": []*yaml.Comment{
			yaml.HeadComment(" OAuth2 identity providers", fmt.Sprintf(" Available types: %v", oauth2.RegisteredProviders())),
		},
		".providers[0].options": []*yaml.Comment{yaml.HeadComment(" Provider options, providers without key or secret are ignored")},
		".accounts":             []*yaml.Comment{yaml.HeadComment(" Local accounts created or updated at startup", " Accounts without email or password are ignored")},
		".roles":                []*yaml.Comment{yaml.HeadComment(" Roles assigned on login to users of an identity provider")},
		".defaultRole":          []*yaml.Comment{yaml.HeadComment(" Role of provider users without assignment")},
		".access":               []*yaml.Comment{yaml.HeadComment(" Access rules per page, all rules of a page must be satisfied", " Rules are evaluated with 'user' (nil when anonymous) and 'page'", " See https://expr-lang.org/docs/language-definition")},
	}
}
