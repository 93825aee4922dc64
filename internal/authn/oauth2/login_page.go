package oauth2

import (
	"fmt"
	"net/http"

	"github.com/bornholm/timetrack/internal/ui"
)

type LoginPageTemplateData struct {
	ui.HeadTemplateData
	Providers     []Provider
	ProviderURL   string
	LoginURL      string
	PasswordLogin bool
	ErrorMessage  string
	Email         string
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLoginPage(w, r, http.StatusOK, "", "")
}

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, status int, errorMessage string, email string) {
	data := LoginPageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Sign in",
			AppTitle:  h.appTitle,
		},
		Providers:     h.providers,
		ProviderURL:   fmt.Sprintf("%s/providers", h.prefix),
		LoginURL:      fmt.Sprintf("%s/login", h.prefix),
		PasswordLogin: h.passwordLogin != nil,
		ErrorMessage:  errorMessage,
		Email:         email,
	}

	render(w, r, status, "login", data)
}
