package shell

import (
	"net/url"

	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/internal/navigation"
)

type EntryView struct {
	Label    string
	RouteKey string
	URL      string
	Icon     navigation.Icon
	Active   bool
}

type UserView struct {
	Label      string
	Email      string
	Role       string
	Initials   string
	ProfileURL string
}

type View struct {
	Title           string
	Subtitle        string
	CurrentRouteKey string
	Entries         []EntryView
	User            *UserView
	DrawerOpen      bool
	DrawerState     DrawerState

	// IdentityDeferred makes the identity blocks load
	// asynchronously from IdentityURL, in a single request
	IdentityDeferred bool

	IdentityURL string
	DrawerURL   string
	NavigateURL string
	SignOutURL  string
	CloseIcon   navigation.Icon
	MenuIcon    navigation.Icon
	LogoIcon    navigation.Icon
	ChevronIcon navigation.Icon
	SignOutIcon navigation.Icon
	ProfileIcon navigation.Icon
}

// DrawerEventURL returns the endpoint applying the given event to the drawer
func (v View) DrawerEventURL(ev string) string {
	query := url.Values{}
	query.Set("state", string(v.DrawerState))
	query.Set("event", ev)
	query.Set("page", v.CurrentRouteKey)

	return v.DrawerURL + "?" + query.Encode()
}

// FollowURL returns the endpoint following an entry from the given origin
func (v View) FollowURL(routeKey string, origin string) string {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("page", v.CurrentRouteKey)

	return v.NavigateURL + "/" + url.PathEscape(routeKey) + "?" + query.Encode()
}

// IdentityFragmentURL returns the endpoint rendering both identity blocks
func (v View) IdentityFragmentURL() string {
	query := url.Values{}
	query.Set("page", v.CurrentRouteKey)

	return v.IdentityURL + "?" + query.Encode()
}

// View returns a snapshot of the shell for the given route key
func (s *Shell) View(currentRouteKey string) View {
	s.mu.RLock()
	user := s.user
	drawerOpen := s.drawerOpen
	s.mu.RUnlock()

	model := s.opts.Model

	entries := model.Entries()
	entryViews := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		entryViews = append(entryViews, EntryView{
			Label:    e.Label,
			RouteKey: e.RouteKey,
			URL:      model.URL(e.RouteKey),
			Icon:     e.Icon,
			Active:   model.IsActive(e, currentRouteKey),
		})
	}

	view := View{
		Title:           s.opts.Title,
		Subtitle:        s.opts.Subtitle,
		CurrentRouteKey: currentRouteKey,
		Entries:         entryViews,
		DrawerOpen:      drawerOpen,
		DrawerState:     drawerState(drawerOpen),
		IdentityURL:     s.opts.Prefix + "/identity",
		DrawerURL:       s.opts.Prefix + "/drawer",
		NavigateURL:     s.opts.Prefix + "/navigate",
		SignOutURL:      s.opts.SignOutPath,
		CloseIcon:       navigation.IconClose,
		MenuIcon:        navigation.IconMenu,
		LogoIcon:        navigation.IconClock,
		ChevronIcon:     navigation.IconChevronRight,
		SignOutIcon:     navigation.IconLogOut,
		ProfileIcon:     navigation.IconUser,
	}

	if user != nil {
		view.User = &UserView{
			Label:      identity.Label(user),
			Email:      user.Email,
			Role:       user.Role,
			Initials:   identity.Initials(user),
			ProfileURL: model.URL(navigation.RouteMyProfile),
		}
	}

	return view
}
