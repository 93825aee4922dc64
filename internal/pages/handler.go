package pages

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/timetrack/internal/authz"
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/bornholm/timetrack/internal/shell"
	"github.com/bornholm/timetrack/internal/store"
)

// Directory gives access to the employees records
type Directory interface {
	CountUsers(ctx context.Context) (int64, error)
	GetUsers(ctx context.Context) ([]*store.User, error)
	SaveUser(ctx context.Context, user *store.User) error
}

type Handler struct {
	mux             *http.ServeMux
	binder          identity.Binder
	directory       Directory
	model           *navigation.Model
	policy          *authz.Policy
	title           string
	subtitle        string
	shellPrefix     string
	loginURL        string
	signOutRedirect string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(binder identity.Binder, directory Directory, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:             http.NewServeMux(),
		binder:          binder,
		directory:       directory,
		model:           opts.Model,
		policy:          opts.Policy,
		title:           opts.Title,
		subtitle:        opts.Subtitle,
		shellPrefix:     opts.ShellPrefix,
		loginURL:        opts.LoginURL,
		signOutRedirect: opts.SignOutRedirect,
	}

	h.mux.HandleFunc("GET /{$}", h.serveRoot)
	h.mux.HandleFunc("GET /", h.servePage)
	h.mux.Handle(
		fmt.Sprintf("POST %s", h.model.URL(navigation.RouteMyProfile)),
		opts.ProfileMiddleware(http.HandlerFunc(h.serveUpdateProfile)),
	)

	h.mux.HandleFunc(fmt.Sprintf("GET %s/identity", h.shellPrefix), h.serveIdentity)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/drawer", h.shellPrefix), h.serveDrawer)
	h.mux.HandleFunc(fmt.Sprintf("GET %s/navigate/{routeKey}", h.shellPrefix), h.serveNavigate)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/signout", h.shellPrefix), h.serveSignOut)

	return h
}

func (h *Handler) newShell(service identity.Service, navigator shell.Navigator, funcs ...shell.OptionFunc) *shell.Shell {
	funcs = append([]shell.OptionFunc{
		shell.WithModel(h.model),
		shell.WithTitle(h.title, h.subtitle),
		shell.WithPrefix(h.shellPrefix),
	}, funcs...)

	return shell.New(service, navigator, funcs...)
}

func (h *Handler) serveRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.model.URL(navigation.RouteDashboard), http.StatusSeeOther)
}

var _ http.Handler = &Handler{}
