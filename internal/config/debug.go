package config

import "github.com/goccy/go-yaml"

type Debug struct {
	PProf InterpolatedBool `yaml:"pprof"`
}

func NewDefaultDebugConfig() Debug {
	return Debug{
		PProf: false,
	}
}

func NewDebugConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Debug configuration")},
		".pprof": []*yaml.Comment{yaml.HeadComment(" Expose runtime profiles on /debug/pprof to admins")},
	}
}
