package log

import (
	"log/slog"
	"net/url"
	"strings"
)

var sensitiveParams = []string{"secret", "token", "password", "key"}

// ScrubbedURL returns an attribute holding the given URL with its
// credentials and sensitive query parameters masked
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, rawURL)
	}

	scrubbed := *u

	if scrubbed.User != nil {
		scrubbed.User = url.UserPassword("xxx", "xxx")
	}

	if scrubbed.RawQuery != "" {
		query := scrubbed.Query()
		for key := range query {
			if isSensitive(key) {
				query.Set(key, "xxx")
			}
		}
		scrubbed.RawQuery = query.Encode()
	}

	return slog.String(name, scrubbed.String())
}

func isSensitive(param string) bool {
	param = strings.ToLower(param)

	for _, s := range sensitiveParams {
		if strings.Contains(param, s) {
			return true
		}
	}

	return false
}
