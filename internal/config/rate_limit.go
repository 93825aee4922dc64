package config

import "github.com/goccy/go-yaml"

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultRateLimitConfig() RateLimit {
	return RateLimit{
		Rate:  0.2,
		Burst: 5,
	}
}

func NewRateLimitConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":       []*yaml.Comment{yaml.HeadComment(" Login attempts rate limiting, per client address")},
		".rate":  []*yaml.Comment{yaml.HeadComment(" Allowed attempts per second")},
		".burst": []*yaml.Comment{yaml.HeadComment(" Maximum burst of attempts")},
	}
}
