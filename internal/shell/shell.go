package shell

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

// Navigator performs a navigation to a resolved URL
type Navigator interface {
	Navigate(ctx context.Context, url string)
}

type NavigatorFunc func(ctx context.Context, url string)

func (fn NavigatorFunc) Navigate(ctx context.Context, url string) {
	fn(ctx, url)
}

type Origin string

const (
	OriginSidebar Origin = "sidebar"
	OriginDrawer  Origin = "drawer"
	OriginMenu    Origin = "menu"
)

// Shell holds the state of the navigation shell from mount to unmount
type Shell struct {
	identity  identity.Service
	navigator Navigator
	opts      *Options

	mu         sync.RWMutex
	user       *identity.User
	drawerOpen bool
	mounted    bool
	alive      bool
	cancel     context.CancelFunc
	settled    chan struct{}
	onChange   []func()
}

// Mount issues the current user request. It runs once per shell,
// subsequent calls are no-op.
func (s *Shell) Mount(ctx context.Context) {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mounted = true
	s.alive = true
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer close(s.settled)

		user, err := s.identity.CurrentUser(ctx)
		if err != nil {
			return
		}

		s.mu.Lock()
		if !s.alive {
			s.mu.Unlock()
			return
		}
		s.user = user
		s.mu.Unlock()

		s.changed()
	}()
}

// Unmount ends the shell's lifetime. A pending current user request
// is cancelled and its result, if any, discarded.
func (s *Shell) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alive = false

	if s.cancel != nil {
		s.cancel()
	}
}

// Settled returns a channel closed once the current user request completed.
// It never closes on a shell which was not mounted.
func (s *Shell) Settled() <-chan struct{} {
	return s.settled
}

// Resolved reports whether the current user request has completed
func (s *Shell) Resolved() bool {
	select {
	case <-s.settled:
		return true
	default:
		return false
	}
}

// OnChange registers a function called each time the state changes
func (s *Shell) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onChange = append(s.onChange, fn)
}

func (s *Shell) CurrentUser() *identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

func (s *Shell) DrawerOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.drawerOpen
}

func (s *Shell) Dispatch(ev DrawerEvent) {
	s.mu.Lock()
	next := NextDrawerState(s.drawerOpen, ev)
	changed := next != s.drawerOpen
	s.drawerOpen = next
	s.mu.Unlock()

	if changed {
		s.changed()
	}
}

func (s *Shell) OpenDrawer() {
	s.Dispatch(DrawerToggleOpen)
}

func (s *Shell) CloseDrawer() {
	s.Dispatch(DrawerToggleClose)
}

func (s *Shell) DismissDrawer() {
	s.Dispatch(DrawerDismiss)
}

// Follow navigates to the given route key. Following an entry from the
// drawer closes it.
func (s *Shell) Follow(ctx context.Context, routeKey string, origin Origin) error {
	if _, err := s.opts.Model.Find(routeKey); err != nil {
		return errors.WithStack(err)
	}

	if origin == OriginDrawer {
		s.Dispatch(DrawerNavigate)
	}

	s.navigator.Navigate(ctx, s.opts.Model.URL(routeKey))

	return nil
}

// SignOut ends the identity session. The outcome is left to the identity
// service, the current user is kept as is.
func (s *Shell) SignOut(ctx context.Context) {
	if err := s.identity.EndSession(ctx); err != nil {
		slog.DebugContext(ctx, "end session failed", log.Error(errors.WithStack(err)))
	}
}

func (s *Shell) changed() {
	s.mu.RLock()
	listeners := append([]func(){}, s.onChange...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

func New(identity identity.Service, navigator Navigator, funcs ...OptionFunc) *Shell {
	opts := NewOptions(funcs...)

	s := &Shell{
		identity:   identity,
		navigator:  navigator,
		opts:       opts,
		drawerOpen: opts.DrawerOpen,
		settled:    make(chan struct{}),
	}

	if opts.UserResolved {
		s.user = opts.User
		s.mounted = true
		close(s.settled)
	}

	return s
}

var noopNavigator = NavigatorFunc(func(ctx context.Context, url string) {})

// NoopNavigator is used by shells which only render
func NoopNavigator() Navigator {
	return noopNavigator
}
