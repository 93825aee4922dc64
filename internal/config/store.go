package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Store struct {
	Path        InterpolatedString    `yaml:"path"`
	BusyTimeout *InterpolatedDuration `yaml:"busyTimeout"`
}

func NewDefaultStoreConfig() Store {
	return Store{
		Path:        "${TIMETRACK_STORE_PATH:-data.db}",
		BusyTimeout: NewInterpolatedDuration(5 * time.Second),
	}
}

func NewStoreConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":             []*yaml.Comment{yaml.HeadComment(" Store configuration")},
		".path":        []*yaml.Comment{yaml.HeadComment(" Path of the SQLite database")},
		".busyTimeout": []*yaml.Comment{yaml.HeadComment(" Time a connection waits for the database to be unlocked")},
	}
}
