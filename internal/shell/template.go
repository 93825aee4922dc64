package shell

import (
	"embed"
	"html/template"
	"io"

	"github.com/bornholm/timetrack/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

// TemplateFS holds the shell layouts, to be merged with page templates
var TemplateFS = templateFs

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

const (
	TemplateShell           = "shell"
	TemplateDrawer          = "shell-drawer"
	TemplateIdentity        = "shell-identity"
	TemplateIdentityDesktop = "shell-identity-desktop"
	TemplateIdentityMobile  = "shell-identity-mobile"
)

func Render(w io.Writer, name string, view View) error {
	if err := templates.ExecuteTemplate(w, name, view); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
