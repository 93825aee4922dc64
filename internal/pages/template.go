package pages

import (
	"embed"
	"html/template"

	"github.com/bornholm/timetrack/internal/shell"
	"github.com/bornholm/timetrack/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, shell.TemplateFS, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}
