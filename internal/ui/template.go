package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"icon": IconClass,
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"humanizeTime": func(t time.Time) string {
		if t.IsZero() || t.Unix() == 0 {
			return "never"
		}
		return humanize.Time(t)
	},
	"initials": identity.Initials,
	"userLabel": identity.Label,
}

var templatePatterns = []string{
	"**/views/*.gohtml",
	"**/layouts/*.gohtml",
}

func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)

	templates, err := templateFiles(filesystems...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	merged := mergefs.Merge(filesystems...)

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// templateFiles lists the template files of each filesystem. Globbing the
// merged filesystem would walk directories missing from some of them.
func templateFiles(filesystems ...fs.FS) ([]string, error) {
	seen := map[string]struct{}{}
	files := make([]string, 0)

	for _, fsys := range filesystems {
		for _, pattern := range templatePatterns {
			matches, err := fs.Glob(fsys, pattern)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			for _, m := range matches {
				if _, exists := seen[m]; exists {
					continue
				}

				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
	}

	return files, nil
}

type HeadTemplateData struct {
	PageTitle string
	AppTitle  string
}
