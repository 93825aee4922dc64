package pages

import (
	"net/http"

	"github.com/bornholm/timetrack/internal/authz"
	"github.com/bornholm/timetrack/internal/navigation"
)

type Options struct {
	Model           *navigation.Model
	Policy          *authz.Policy
	Title           string
	Subtitle        string
	ShellPrefix     string
	LoginURL        string
	SignOutRedirect string
	// ProfileMiddleware guards the profile update endpoint
	ProfileMiddleware func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Model:           navigation.NewModel(),
		Policy:          authz.NewPolicy(),
		Title:           "TimeTrack",
		Subtitle:        "Attendance System",
		ShellPrefix:     "/shell",
		LoginURL:        "/auth/login",
		SignOutRedirect: "/",
		ProfileMiddleware: func(h http.Handler) http.Handler {
			return h
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithModel(model *navigation.Model) OptionFunc {
	return func(opts *Options) {
		opts.Model = model
	}
}

func WithPolicy(policy *authz.Policy) OptionFunc {
	return func(opts *Options) {
		opts.Policy = policy
	}
}

func WithTitle(title, subtitle string) OptionFunc {
	return func(opts *Options) {
		opts.Title = title
		opts.Subtitle = subtitle
	}
}

func WithShellPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.ShellPrefix = prefix
	}
}

func WithLoginURL(url string) OptionFunc {
	return func(opts *Options) {
		opts.LoginURL = url
	}
}

func WithSignOutRedirect(url string) OptionFunc {
	return func(opts *Options) {
		opts.SignOutRedirect = url
	}
}

func WithProfileMiddleware(mw func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.ProfileMiddleware = mw
	}
}
