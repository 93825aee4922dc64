package config

import "github.com/goccy/go-yaml"

type App struct {
	Title    InterpolatedString `yaml:"title"`
	Subtitle InterpolatedString `yaml:"subtitle"`
}

func NewDefaultAppConfig() App {
	return App{
		Title:    "${TIMETRACK_APP_TITLE:-TimeTrack}",
		Subtitle: "${TIMETRACK_APP_SUBTITLE:-Attendance System}",
	}
}

func NewAppConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":          []*yaml.Comment{yaml.HeadComment(" Application configuration")},
		".title":    []*yaml.Comment{yaml.HeadComment(" Title displayed in the navigation shell")},
		".subtitle": []*yaml.Comment{yaml.HeadComment(" Subtitle displayed under the title on wide screens")},
	}
}
