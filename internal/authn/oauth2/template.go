package oauth2

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/ui"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
)

//go:embed templates/**/*.gohtml
var fs embed.FS

var templates *template.Template

func init() {
	t, err := ui.Templates(nil, fs)
	if err != nil {
		panic(errors.WithStack(err))
	}
	templates = t
}

// render executes the named template before writing anything, so that
// a failing template answers with an error instead of a truncated page
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buff bytes.Buffer

	if err := templates.ExecuteTemplate(&buff, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", slog.String("template", name), log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buff.WriteTo(w); err != nil {
		slog.DebugContext(r.Context(), "could not write response", log.Error(errors.WithStack(err)))
	}
}
