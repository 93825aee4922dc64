package shell

import (
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/internal/navigation"
)

type Options struct {
	Title       string
	Subtitle    string
	Model       *navigation.Model
	Prefix      string
	SignOutPath string
	DrawerOpen  bool

	// User is the current user, already resolved, when UserResolved is set
	User         *identity.User
	UserResolved bool
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Title:       "TimeTrack",
		Subtitle:    "Attendance System",
		Model:       navigation.NewModel(),
		Prefix:      "/shell",
		SignOutPath: "/shell/signout",
		DrawerOpen:  false,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTitle(title, subtitle string) OptionFunc {
	return func(opts *Options) {
		opts.Title = title
		opts.Subtitle = subtitle
	}
}

func WithModel(model *navigation.Model) OptionFunc {
	return func(opts *Options) {
		opts.Model = model
	}
}

// WithPrefix sets the path prefix of the shell's HTTP endpoints
func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
		opts.SignOutPath = prefix + "/signout"
	}
}

// WithDrawerOpen restores a drawer state carried by the client
func WithDrawerOpen(open bool) OptionFunc {
	return func(opts *Options) {
		opts.DrawerOpen = open
	}
}

// WithCurrentUser gives the shell a current user resolved beforehand.
// The shell is then settled and mounting it issues no request.
func WithCurrentUser(user *identity.User) OptionFunc {
	return func(opts *Options) {
		opts.User = user
		opts.UserResolved = true
	}
}
