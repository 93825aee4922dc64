package pages

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

const (
	fieldDisplayName     = "display_name"
	maxDisplayNameLength = 100
)

func (h *Handler) serveUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, err := authn.ContextUser(ctx)
	if err != nil {
		http.Redirect(w, r, h.loginURL, http.StatusSeeOther)
		return
	}

	user, ok := authUser.(*store.User)
	if !ok {
		slog.ErrorContext(ctx, "unexpected user type", slog.String("type", fmt.Sprintf("%T", authUser)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	displayName := strings.TrimSpace(r.PostForm.Get(fieldDisplayName))
	if displayName == "" || utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		http.Error(w, "Invalid display name", http.StatusBadRequest)
		return
	}

	user.DisplayName = displayName

	if err := h.directory.SaveUser(ctx, user); err != nil {
		slog.ErrorContext(ctx, "could not save user", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.model.URL(navigation.RouteMyProfile)+"?saved", http.StatusSeeOther)
}
