package oauth2

import (
	"net/http"

	"github.com/bornholm/timetrack/internal/authn/password"
)

type Options struct {
	Providers          []Provider
	SessionName        string
	Prefix             string
	PostLoginRedirect  string
	PostLogoutRedirect string
	AppTitle           string
	OnLogin            OnLoginFunc
	PasswordLogin      password.UserProvider
	LoginMiddleware    func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:          make([]Provider, 0),
		SessionName:        "timetrack_auth",
		Prefix:             "",
		PostLoginRedirect:  "/",
		PostLogoutRedirect: "/",
		AppTitle:           "TimeTrack",
		OnLogin:            nil,
		PasswordLogin:      nil,
		LoginMiddleware: func(h http.Handler) http.Handler {
			return h
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

func WithPostLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLogoutRedirect = path
	}
}

func WithAppTitle(title string) OptionFunc {
	return func(opts *Options) {
		opts.AppTitle = title
	}
}

// WithOnLogin registers a function called each time a user signs in,
// before the session is stored
func WithOnLogin(fn OnLoginFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnLogin = fn
	}
}

// WithPasswordLogin enables the email/password login form
func WithPasswordLogin(provider password.UserProvider) OptionFunc {
	return func(opts *Options) {
		opts.PasswordLogin = provider
	}
}

// WithLoginMiddleware wraps the password login endpoint
func WithLoginMiddleware(mw func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.LoginMiddleware = mw
	}
}
