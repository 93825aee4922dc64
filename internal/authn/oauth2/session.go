package oauth2

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var errSessionNotFound = errors.New("session not found")

const (
	sessionKeySubject  = "subject"
	sessionKeyProvider = "provider"
)

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user authn.User) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// Undecodable cookies (ie rotated keys) are replaced by a new session
		slog.DebugContext(r.Context(), "could not decode session", slog.Any("error", errors.WithStack(err)))
	}

	if sess == nil {
		return errors.New("could not create session")
	}

	sess.Values[sessionKeySubject] = user.UserSubject()
	sess.Values[sessionKeyProvider] = user.UserProvider()

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*store.User, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil || sess == nil || sess.IsNew {
		return nil, errors.WithStack(errSessionNotFound)
	}

	subject, _ := sess.Values[sessionKeySubject].(string)
	provider, _ := sess.Values[sessionKeyProvider].(string)

	if subject == "" || provider == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	user, err := h.store.FindUser(r.Context(), subject, provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.WithStack(errSessionNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil || sess == nil {
		return errors.WithStack(errSessionNotFound)
	}

	sess.Values = map[any]any{}

	if sess.Options == nil {
		sess.Options = &sessions.Options{Path: "/"}
	}

	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
