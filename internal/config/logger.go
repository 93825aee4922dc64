package config

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bornholm/timetrack/pkg/log"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Logger struct {
	Level  InterpolatedString `yaml:"level"`
	Format InterpolatedString `yaml:"format"`
}

// SlogLevel parses the configured level, either a name (debug, info, warn,
// error, optionally with an offset such as "info+2") or a number
func (l Logger) SlogLevel() (slog.Level, error) {
	raw := strings.TrimSpace(string(l.Level))

	if n, err := strconv.Atoi(raw); err == nil {
		return slog.Level(n), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, errors.Wrapf(err, "invalid logger level '%s'", raw)
	}

	return level, nil
}

// Handler creates the slog handler writing to w. Records carry the
// attributes stored in their context.
func (l Logger) Handler(w io.Writer) (slog.Handler, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler

	switch format := strings.ToLower(strings.TrimSpace(string(l.Format))); format {
	case "", LogFormatText:
		handler = slog.NewTextHandler(w, opts)
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Errorf("invalid logger format '%s'", format)
	}

	return log.ContextHandler{Handler: handler}, nil
}

func NewDefaultLoggerConfig() Logger {
	return Logger{
		Level:  "${TIMETRACK_LOG_LEVEL:-info}",
		Format: "${TIMETRACK_LOG_FORMAT:-text}",
	}
}

func NewLoggerConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":        []*yaml.Comment{yaml.HeadComment(" Logger configuration")},
		".level":  []*yaml.Comment{yaml.HeadComment(" Logging level, by name (debug, info, warn, error) or number (-4, 0, 4, 8)")},
		".format": []*yaml.Comment{yaml.HeadComment(" Output format (text, json)")},
	}
}
