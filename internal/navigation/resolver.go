package navigation

import "strings"

type Resolver interface {
	URL(routeKey string) string
}

type ResolverFunc func(routeKey string) string

func (fn ResolverFunc) URL(routeKey string) string {
	return fn(routeKey)
}

// PageResolver maps a route key to "<prefix>/<lowercased key>",
// spaces being replaced by dashes.
type PageResolver struct {
	Prefix string
}

// URL implements Resolver.
func (r PageResolver) URL(routeKey string) string {
	slug := strings.ReplaceAll(strings.ToLower(routeKey), " ", "-")
	return strings.TrimSuffix(r.Prefix, "/") + "/" + slug
}

var _ Resolver = PageResolver{}
