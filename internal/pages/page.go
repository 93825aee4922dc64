package pages

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/timetrack/internal/identity"
	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/bornholm/timetrack/internal/shell"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/bornholm/timetrack/internal/ui"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

type PageTemplateData struct {
	ui.HeadTemplateData
	Shell shell.View
	Entry navigation.Entry
}

type DashboardTemplateData struct {
	PageTemplateData
	EmployeeCount int64
	Today         time.Time
}

type ProfileTemplateData struct {
	PageTemplateData
	User      *identity.User
	LoginURL  string
	ActionURL string
	Saved     bool
}

type EmployeesTemplateData struct {
	PageTemplateData
	Employees []*store.User
}

type StatusTemplateData struct {
	PageTemplateData
	Code     int
	Message  string
	LoginURL string
}

const (
	viewDashboard = "dashboard"
	viewProfile   = "myprofile"
	viewEmployees = "employees"
	viewEmpty     = "empty"
	viewStatus    = "status"
)

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := h.model.Lookup(r.URL.Path)
	if err != nil {
		h.renderStatus(w, r, http.StatusNotFound, "This page does not exist.")
		return
	}

	service := h.binder.Identity(w, r)

	var (
		user       *identity.User
		shellFuncs []shell.OptionFunc
	)

	if h.policy.Restricted(entry.RouteKey) || entry.RouteKey == navigation.RouteMyProfile {
		user, err = h.currentUser(ctx, service)

		// The shell renders the identity resolved here
		shellFuncs = append(shellFuncs, shell.WithCurrentUser(user))

		if err != nil {
			h.renderStatus(w, r, http.StatusInternalServerError, "Your session could not be checked.", shellFuncs...)
			return
		}
	}

	allowed, err := h.policy.Allowed(entry.RouteKey, user)
	if err != nil {
		slog.ErrorContext(ctx, "could not evaluate access rules", slog.String("page", entry.RouteKey), log.Error(errors.WithStack(err)))
		h.renderStatus(w, r, http.StatusInternalServerError, "Access rules could not be evaluated.", shellFuncs...)
		return
	}

	if !allowed {
		h.renderStatus(w, r, http.StatusForbidden, "You are not allowed to open this page.", shellFuncs...)
		return
	}

	page := h.pageData(service, entry, shellFuncs...)

	var (
		view string
		data any
	)

	switch entry.RouteKey {
	case navigation.RouteDashboard:
		count, err := h.directory.CountUsers(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "could not count users", log.Error(errors.WithStack(err)))
		}

		view, data = viewDashboard, DashboardTemplateData{
			PageTemplateData: page,
			EmployeeCount:    count,
			Today:            time.Now(),
		}

	case navigation.RouteMyProfile:
		view, data = viewProfile, ProfileTemplateData{
			PageTemplateData: page,
			User:             user,
			LoginURL:         h.loginURL,
			ActionURL:        h.model.URL(navigation.RouteMyProfile),
			Saved:            r.URL.Query().Has("saved"),
		}

	case navigation.RouteEmployees:
		employees, err := h.directory.GetUsers(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "could not list users", log.Error(errors.WithStack(err)))
			h.renderStatus(w, r, http.StatusInternalServerError, "Employees could not be listed.", shellFuncs...)
			return
		}

		view, data = viewEmployees, EmployeesTemplateData{
			PageTemplateData: page,
			Employees:        employees,
		}

	default:
		view, data = viewEmpty, page
	}

	h.render(w, r, view, data)
}

// currentUser resolves the current user synchronously. A missing session
// is not an error.
func (h *Handler) currentUser(ctx context.Context, service identity.Service) (*identity.User, error) {
	user, err := service.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			return nil, nil
		}

		slog.ErrorContext(ctx, "could not retrieve current user", log.Error(errors.WithStack(err)))

		return nil, errors.WithStack(err)
	}

	return user, nil
}

// pageData renders the shell around a page. Unless the current user was
// resolved beforehand, identity blocks are loaded by a single deferred
// request.
func (h *Handler) pageData(service identity.Service, entry navigation.Entry, funcs ...shell.OptionFunc) PageTemplateData {
	sh := h.newShell(service, shell.NoopNavigator(), funcs...)

	view := sh.View(entry.RouteKey)
	view.IdentityDeferred = !sh.Resolved()

	return PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: entry.Label,
			AppTitle:  h.title,
		},
		Shell: view,
		Entry: entry,
	}
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, code int, message string, funcs ...shell.OptionFunc) {
	page := h.pageData(h.binder.Identity(w, r), navigation.Entry{Label: http.StatusText(code)}, funcs...)

	data := StatusTemplateData{
		PageTemplateData: page,
		Code:             code,
		Message:          message,
		LoginURL:         h.loginURL,
	}

	w.WriteHeader(code)
	h.render(w, r, viewStatus, data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", slog.String("template", name), log.Error(errors.WithStack(err)))
	}
}
