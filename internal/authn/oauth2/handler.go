package oauth2

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/authn/password"
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type OnLoginFunc func(ctx context.Context, user *store.User) error

type Handler struct {
	mux                *http.ServeMux
	sessionStore       sessions.Store
	store              *store.Store
	sessionName        string
	providers          []Provider
	prefix             string
	postLoginRedirect  string
	postLogoutRedirect string
	appTitle           string
	onLogin            OnLoginFunc
	passwordLogin      password.UserProvider
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, store *store.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:                http.NewServeMux(),
		sessionStore:       sessionStore,
		store:              store,
		sessionName:        opts.SessionName,
		providers:          opts.Providers,
		prefix:             opts.Prefix,
		postLoginRedirect:  opts.PostLoginRedirect,
		postLogoutRedirect: opts.PostLogoutRedirect,
		appTitle:           opts.AppTitle,
		onLogin:            opts.OnLogin,
		passwordLogin:      opts.PasswordLogin,
	}

	h.mux.HandleFunc(fmt.Sprintf("GET %s/login", h.prefix), h.getLoginPage)
	if h.passwordLogin != nil {
		h.mux.Handle(fmt.Sprintf("POST %s/login", h.prefix), opts.LoginMiddleware(http.HandlerFunc(h.handlePasswordLogin)))
	}
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}", h.prefix), withContextProvider(http.HandlerFunc(h.handleProvider)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/callback", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderCallback)))
	h.mux.HandleFunc(fmt.Sprintf("GET %s/logout", h.prefix), h.handleLogout)
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/logout", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderLogout)))

	return h
}

// Authenticator returns the session user. When authoritative, anonymous
// requests are redirected to the login page.
func (h *Handler) Authenticator(authoritative bool) authn.Authenticator {
	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		user, err := h.retrieveSessionUser(r)
		if err != nil {
			if !errors.Is(err, errSessionNotFound) {
				slog.ErrorContext(r.Context(), "could not retrieve user from session", slog.Any("error", errors.WithStack(err)))
			}

			if authoritative {
				http.Redirect(w, r, fmt.Sprintf("%s/login", h.prefix), http.StatusSeeOther)
				return nil, errors.WithStack(authn.ErrCancel)
			}

			return nil, nil
		}

		return user, nil
	})
}

// Identity implements identity.Binder.
func (h *Handler) Identity(w http.ResponseWriter, r *http.Request) identity.Service {
	return &sessionIdentity{handler: h, w: w, r: r}
}

var _ identity.Binder = &Handler{}

type sessionIdentity struct {
	handler *Handler
	w       http.ResponseWriter
	r       *http.Request
}

// CurrentUser implements identity.Service.
func (i *sessionIdentity) CurrentUser(ctx context.Context) (*identity.User, error) {
	user, err := i.handler.retrieveSessionUser(i.r.WithContext(ctx))
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, errors.WithStack(identity.ErrNoSession)
		}

		return nil, errors.WithStack(err)
	}

	return user.Identity(), nil
}

// EndSession implements identity.Service.
func (i *sessionIdentity) EndSession(ctx context.Context) error {
	if err := i.handler.clearSession(i.w, i.r.WithContext(ctx)); err != nil && !errors.Is(err, errSessionNotFound) {
		return errors.WithStack(err)
	}

	return nil
}

var _ identity.Service = &sessionIdentity{}

var _ http.Handler = &Handler{}

func withContextProvider(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		provider := r.PathValue("provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
