package oauth2

import (
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

const (
	TypeGoogle ProviderType = "google"
	TypeGithub ProviderType = "github"
	TypeGitea  ProviderType = "gitea"
	TypeOIDC   ProviderType = "oidc"
)

// ErrMissingCredentials is returned for providers configured without
// client key or secret
var ErrMissingCredentials = errors.New("client key and secret are required")

type ClientOptions struct {
	Key    string   `mapstructure:"key"`
	Secret string   `mapstructure:"secret"`
	Scopes []string `mapstructure:"scopes"`
}

type GiteaOptions struct {
	ClientOptions `mapstructure:",squash"`
	AuthURL       string `mapstructure:"authUrl"`
	TokenURL      string `mapstructure:"tokenUrl"`
	ProfileURL    string `mapstructure:"profileUrl"`
}

type OIDCOptions struct {
	ClientOptions `mapstructure:",squash"`
	DiscoveryURL  string `mapstructure:"discoveryUrl"`
}

func init() {
	RegisterProvider(TypeGoogle, func(callbackURL string, options any) (goth.Provider, error) {
		opts := ClientOptions{}
		if err := decodeClientOptions(options, &opts, &opts); err != nil {
			return nil, errors.WithStack(err)
		}

		return google.New(opts.Key, opts.Secret, callbackURL, opts.Scopes...), nil
	})

	RegisterProvider(TypeGithub, func(callbackURL string, options any) (goth.Provider, error) {
		opts := ClientOptions{}
		if err := decodeClientOptions(options, &opts, &opts); err != nil {
			return nil, errors.WithStack(err)
		}

		return github.New(opts.Key, opts.Secret, callbackURL, opts.Scopes...), nil
	})

	RegisterProvider(TypeGitea, func(callbackURL string, options any) (goth.Provider, error) {
		opts := GiteaOptions{}
		if err := decodeClientOptions(options, &opts, &opts.ClientOptions); err != nil {
			return nil, errors.WithStack(err)
		}

		if opts.AuthURL == "" || opts.TokenURL == "" || opts.ProfileURL == "" {
			return gitea.New(opts.Key, opts.Secret, callbackURL, opts.Scopes...), nil
		}

		return gitea.NewCustomisedURL(opts.Key, opts.Secret, callbackURL, opts.AuthURL, opts.TokenURL, opts.ProfileURL, opts.Scopes...), nil
	})

	RegisterProvider(TypeOIDC, func(callbackURL string, options any) (goth.Provider, error) {
		opts := OIDCOptions{}
		if err := decodeClientOptions(options, &opts, &opts.ClientOptions); err != nil {
			return nil, errors.WithStack(err)
		}

		if opts.DiscoveryURL == "" {
			return nil, errors.New("oidc discovery url missing")
		}

		provider, err := openidConnect.New(opts.Key, opts.Secret, callbackURL, opts.DiscoveryURL, opts.Scopes...)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return provider, nil
	})
}

func decodeClientOptions(options any, result any, client *ClientOptions) error {
	if err := decodeOptions(options, result); err != nil {
		return errors.WithStack(err)
	}

	if client.Key == "" || client.Secret == "" {
		return errors.WithStack(ErrMissingCredentials)
	}

	return nil
}

var gothNames = map[ProviderType]string{
	TypeOIDC: "openid-connect",
}

// GothName returns the name under which goth registers providers of the given type
func GothName(providerType ProviderType) string {
	if name, exists := gothNames[providerType]; exists {
		return name
	}

	return string(providerType)
}
