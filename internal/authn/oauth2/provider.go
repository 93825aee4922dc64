package oauth2

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/authn/password"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
	} else {
		gothic.BeginAuthHandler(w, r)
	}
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("subject", gothUser.UserID), slog.String("provider", gothUser.Provider))

	user := newUserFromGoth(gothUser)

	if user.Email == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user email missing")))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	if user.UserProvider() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user provider missing")))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	storeUser, err := h.store.FindOrCreateUser(ctx, user.UserSubject(), user.UserProvider())
	if err != nil {
		slog.ErrorContext(ctx, "could not find or create user", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	storeUser.Email = user.Email
	if storeUser.DisplayName == "" {
		storeUser.DisplayName = user.DisplayName
	}

	if err := h.completeLogin(w, r, storeUser); err != nil {
		slog.ErrorContext(ctx, "could not complete login", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func (h *Handler) handlePasswordLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := password.Authenticate(r, h.passwordLogin)
	if err != nil {
		if !errors.Is(err, authn.ErrUnauthenticated) {
			slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
		}

		h.renderLoginPage(w, r, http.StatusUnauthorized, "Invalid email or password.", r.PostForm.Get(password.FieldEmail))
		return
	}

	storeUser, ok := user.(*store.User)
	if !ok {
		storeUser, err = h.store.FindUser(ctx, user.UserSubject(), user.UserProvider())
		if err != nil {
			slog.ErrorContext(ctx, "could not find user", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := h.completeLogin(w, r, storeUser); err != nil {
		slog.ErrorContext(ctx, "could not complete login", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func (h *Handler) completeLogin(w http.ResponseWriter, r *http.Request, user *store.User) error {
	ctx := r.Context()

	if h.onLogin != nil {
		if err := h.onLogin(ctx, user); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := h.store.SaveUser(ctx, user); err != nil {
		return errors.WithStack(err)
	}

	if err := h.store.MarkConnected(ctx, user.ID); err != nil {
		return errors.WithStack(err)
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not retrieve session user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil || user.UserProvider() == store.ProviderLocal {
		http.Redirect(w, r, h.postLogoutRedirect, http.StatusTemporaryRedirect)
		return
	}

	redirectURL := fmt.Sprintf("%s/providers/%s/logout", h.prefix, user.UserProvider())

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not logout from provider", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLogoutRedirect, http.StatusTemporaryRedirect)
}
