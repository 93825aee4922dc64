package config

import (
	"fmt"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()

	previous := getEnv
	getEnv = func(key string) string {
		return env[key]
	}

	t.Cleanup(func() {
		getEnv = previous
	})
}

func loadTestdata(t *testing.T, path string, target any) error {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return yaml.Unmarshal(data, target)
}

func TestInterpolatedHTTP(t *testing.T) {
	type testCase struct {
		Env             map[string]string
		ExpectedAddress string
		ExpectedKeys    []string
		ExpectedSecure  bool
		ExpectedMaxAge  time.Duration
		ExpectedFailure bool
	}

	testCases := []testCase{
		{
			Env:             map[string]string{},
			ExpectedAddress: ":8080",
			ExpectedKeys:    []string{},
			ExpectedSecure:  false,
			ExpectedMaxAge:  24 * time.Hour,
		},
		{
			Env: map[string]string{
				"TIMETRACK_HTTP_ADDRESS":         "127.0.0.1:9000",
				"TIMETRACK_HTTP_SESSION_KEY":     "current-key",
				"TIMETRACK_HTTP_COOKIE_SECURE":   "true",
				"TIMETRACK_HTTP_SESSION_MAX_AGE": "7d",
			},
			ExpectedAddress: "127.0.0.1:9000",
			ExpectedKeys:    []string{"current-key"},
			ExpectedSecure:  true,
			ExpectedMaxAge:  7 * 24 * time.Hour,
		},
		{
			Env: map[string]string{
				"TIMETRACK_HTTP_SESSION_KEY":          "current-key",
				"TIMETRACK_HTTP_SESSION_PREVIOUS_KEY": "previous-key",
				"TIMETRACK_HTTP_SESSION_MAX_AGE":      "90m",
			},
			ExpectedAddress: ":8080",
			ExpectedKeys:    []string{"current-key", "previous-key"},
			ExpectedMaxAge:  90 * time.Minute,
		},
		{
			Env: map[string]string{
				"TIMETRACK_HTTP_SESSION_MAX_AGE": "soon",
			},
			ExpectedFailure: true,
		},
		{
			Env: map[string]string{
				"TIMETRACK_HTTP_COOKIE_SECURE": "maybe",
			},
			ExpectedFailure: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			withEnv(t, tc.Env)

			var http HTTP

			err := loadTestdata(t, "testdata/environment/http.yml", &http)

			if tc.ExpectedFailure {
				if err == nil {
					t.Fatal("expected an error")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedAddress, string(http.Address); e != g {
				t.Errorf("http.Address: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedKeys, []string(http.Session.Keys); !slices.Equal(e, g) {
				t.Errorf("http.Session.Keys: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedSecure, bool(http.Session.Cookie.Secure); e != g {
				t.Errorf("http.Session.Cookie.Secure: expected '%v', got '%v'", e, g)
			}

			if http.Session.Cookie.MaxAge == nil {
				t.Fatal("http.Session.Cookie.MaxAge: expected a value")
			}

			if e, g := tc.ExpectedMaxAge, time.Duration(*http.Session.Cookie.MaxAge); e != g {
				t.Errorf("http.Session.Cookie.MaxAge: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestInterpolatedProviderOptions(t *testing.T) {
	withEnv(t, map[string]string{
		"TIMETRACK_OIDC_CLIENT_ID":     "timetrack",
		"TIMETRACK_OIDC_CLIENT_SECRET": "s3cr3t",
		"TIMETRACK_OIDC_HOST":          "sso.example.com",
	})

	var provider AuthProvider

	if err := loadTestdata(t, "testdata/environment/provider.yml", &provider); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Company SSO", string(provider.Label); e != g {
		t.Errorf("provider.Label: expected '%v', got '%v'", e, g)
	}

	if provider.Options == nil {
		t.Fatal("provider.Options: expected a value")
	}

	options := provider.Options.Data

	if e, g := "timetrack", options["key"]; e != g {
		t.Errorf("options[\"key\"]: expected '%v', got '%v'", e, g)
	}

	if e, g := "s3cr3t", options["secret"]; e != g {
		t.Errorf("options[\"secret\"]: expected '%v', got '%v'", e, g)
	}

	if e, g := "https://sso.example.com/.well-known/openid-configuration", options["discoveryUrl"]; e != g {
		t.Errorf("options[\"discoveryUrl\"]: expected '%v', got '%v'", e, g)
	}

	scopes, ok := options["scopes"].([]any)
	if !ok {
		t.Fatalf("options[\"scopes\"]: expected a list, got '%T'", options["scopes"])
	}

	if e, g := 2, len(scopes); e != g {
		t.Fatalf("len(scopes): expected '%v', got '%v'", e, g)
	}

	if e, g := "email", scopes[1]; e != g {
		t.Errorf("scopes[1]: expected '%v', got '%v'", e, g)
	}
}

func TestInterpolatedRateLimit(t *testing.T) {
	type testCase struct {
		Env             map[string]string
		ExpectedRate    float64
		ExpectedBurst   int
		ExpectedFailure bool
	}

	testCases := []testCase{
		{Env: map[string]string{}, ExpectedRate: 0.2, ExpectedBurst: 5},
		{Env: map[string]string{"TIMETRACK_RATE_LIMIT_RATE": "1.5", "TIMETRACK_RATE_LIMIT_BURST": " 10 "}, ExpectedRate: 1.5, ExpectedBurst: 10},
		{Env: map[string]string{"TIMETRACK_RATE_LIMIT_BURST": "many"}, ExpectedFailure: true},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			withEnv(t, tc.Env)

			var rateLimit RateLimit

			err := loadTestdata(t, "testdata/environment/rate-limit.yml", &rateLimit)

			if tc.ExpectedFailure {
				if err == nil {
					t.Fatal("expected an error")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedRate, float64(rateLimit.Rate); e != g {
				t.Errorf("rateLimit.Rate: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedBurst, int(rateLimit.Burst); e != g {
				t.Errorf("rateLimit.Burst: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestLoggerHandler(t *testing.T) {
	type testCase struct {
		Logger          Logger
		ExpectedFailure bool
	}

	testCases := []testCase{
		{Logger: Logger{Level: "info", Format: "text"}},
		{Logger: Logger{Level: "-4", Format: "json"}},
		{Logger: Logger{Level: "warn+2"}},
		{Logger: Logger{Level: "loud"}, ExpectedFailure: true},
		{Logger: Logger{Level: "info", Format: "xml"}, ExpectedFailure: true},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			handler, err := tc.Logger.Handler(os.Stderr)

			if tc.ExpectedFailure {
				if err == nil {
					t.Fatal("expected an error")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if handler == nil {
				t.Error("expected a handler")
			}
		})
	}
}
