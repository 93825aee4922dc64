package pages

import (
	"context"
	"net/http"

	"github.com/bornholm/timetrack/internal/shell"
)

// httpNavigator turns a shell navigation into a redirect. Requests issued
// by htmx get an HX-Redirect header instead so that the whole page is
// replaced.
type httpNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

// Navigate implements shell.Navigator.
func (n *httpNavigator) Navigate(ctx context.Context, url string) {
	if n.r.Header.Get("HX-Request") == "true" {
		n.w.Header().Set("HX-Redirect", url)
		n.w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Redirect(n.w, n.r, url, http.StatusSeeOther)
}

var _ shell.Navigator = &httpNavigator{}
