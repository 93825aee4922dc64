package pages

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/bornholm/timetrack/internal/shell"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

// serveIdentity mounts a shell, waits for the current user request to
// settle and renders the identity blocks of both layouts from its result.
// The request lifetime bounds the wait.
func (h *Handler) serveIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sh := h.newShell(h.binder.Identity(w, r), shell.NoopNavigator())

	sh.Mount(ctx)

	select {
	case <-sh.Settled():
	case <-ctx.Done():
	}

	sh.Unmount()

	view := sh.View(h.currentRouteKey(r))

	if err := shell.Render(w, shell.TemplateIdentity, view); err != nil {
		slog.ErrorContext(ctx, "could not render identity", log.Error(errors.WithStack(err)))
	}
}

// serveDrawer applies a single event to the drawer state carried by the
// client and renders the resulting drawer. The identity block already
// loaded by the page is preserved client side.
func (h *Handler) serveDrawer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	ev, err := shell.ParseDrawerEvent(query.Get("event"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sh := h.newShell(
		h.binder.Identity(w, r), shell.NoopNavigator(),
		shell.WithDrawerOpen(shell.ParseDrawerState(query.Get("state"))),
	)

	sh.Dispatch(ev)

	view := sh.View(h.currentRouteKey(r))
	view.IdentityDeferred = true

	if err := shell.Render(w, shell.TemplateDrawer, view); err != nil {
		slog.ErrorContext(ctx, "could not render drawer", log.Error(errors.WithStack(err)))
	}
}

// serveNavigate follows a navigation entry
func (h *Handler) serveNavigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	origin := shell.Origin(r.URL.Query().Get("origin"))

	sh := h.newShell(
		h.binder.Identity(w, r), &httpNavigator{w: w, r: r},
		shell.WithDrawerOpen(origin == shell.OriginDrawer),
	)

	if err := sh.Follow(ctx, r.PathValue("routeKey"), origin); err != nil {
		if errors.Is(err, navigation.ErrUnknownRoute) {
			h.renderStatus(w, r, http.StatusNotFound, "This page does not exist.")
			return
		}

		slog.ErrorContext(ctx, "could not follow entry", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// serveSignOut ends the session and leaves the page. The sign out outcome
// is not reported to the user.
func (h *Handler) serveSignOut(w http.ResponseWriter, r *http.Request) {
	sh := h.newShell(h.binder.Identity(w, r), shell.NoopNavigator())

	sh.SignOut(r.Context())

	http.Redirect(w, r, h.signOutRedirect, http.StatusSeeOther)
}

func (h *Handler) currentRouteKey(r *http.Request) string {
	routeKey := r.URL.Query().Get("page")

	if _, err := h.model.Find(routeKey); err != nil {
		return ""
	}

	return routeKey
}
