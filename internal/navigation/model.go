package navigation

import (
	"slices"

	"github.com/pkg/errors"
)

type Model struct {
	entries  []Entry
	resolver Resolver
}

func (m *Model) Entries() []Entry {
	return slices.Clone(m.entries)
}

func (m *Model) IsActive(entry Entry, currentRouteKey string) bool {
	return entry.RouteKey == currentRouteKey
}

// Active returns the entry matching the given route key, if any.
func (m *Model) Active(currentRouteKey string) (Entry, bool) {
	idx := slices.IndexFunc(m.entries, func(e Entry) bool {
		return m.IsActive(e, currentRouteKey)
	})
	if idx == -1 {
		return Entry{}, false
	}

	return m.entries[idx], true
}

func (m *Model) Find(routeKey string) (Entry, error) {
	entry, found := m.Active(routeKey)
	if !found {
		return Entry{}, errors.Wrapf(ErrUnknownRoute, "route key '%s'", routeKey)
	}

	return entry, nil
}

func (m *Model) URL(routeKey string) string {
	return m.resolver.URL(routeKey)
}

// Lookup returns the entry whose resolved URL equals the given path.
func (m *Model) Lookup(path string) (Entry, error) {
	for _, e := range m.entries {
		if m.resolver.URL(e.RouteKey) == path {
			return e, nil
		}
	}

	return Entry{}, errors.Wrapf(ErrUnknownRoute, "path '%s'", path)
}

func (m *Model) Resolver() Resolver {
	return m.resolver
}

type ModelOptions struct {
	Entries  []Entry
	Resolver Resolver
}

type ModelOptionFunc func(opts *ModelOptions)

func NewModelOptions(funcs ...ModelOptionFunc) *ModelOptions {
	opts := &ModelOptions{
		Entries:  Entries(),
		Resolver: PageResolver{},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithEntries(entries ...Entry) ModelOptionFunc {
	return func(opts *ModelOptions) {
		opts.Entries = entries
	}
}

func WithResolver(resolver Resolver) ModelOptionFunc {
	return func(opts *ModelOptions) {
		opts.Resolver = resolver
	}
}

func NewModel(funcs ...ModelOptionFunc) *Model {
	opts := NewModelOptions(funcs...)
	return &Model{
		entries:  slices.Clone(opts.Entries),
		resolver: opts.Resolver,
	}
}
