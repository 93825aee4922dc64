package setup

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/timetrack/internal/authn/oauth2"
	"github.com/bornholm/timetrack/internal/config"
	"github.com/bornholm/timetrack/internal/ratelimit"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

var NewOAuth2HandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oauth2.Handler, error) {
	sessionStore, err := newSessionStoreFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Configure providers

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oauth2.Provider, 0)

	for _, p := range conf.Auth.Providers {
		providerType := oauth2.ProviderType(p.Type)
		callbackURL := fmt.Sprintf("%s/auth/providers/%s/callback", conf.HTTP.BaseURL, oauth2.GothName(providerType))

		var options any
		if p.Options != nil {
			options = p.Options.Data
		}

		gothProvider, err := oauth2.NewProvider(providerType, callbackURL, options)
		if err != nil {
			if errors.Is(err, oauth2.ErrMissingCredentials) {
				slog.DebugContext(ctx, "ignoring provider without credentials", slog.String("type", string(p.Type)))
				continue
			}

			return nil, errors.Wrapf(err, "could not configure provider '%s'", p.Type)
		}

		slog.InfoContext(ctx, "identity provider enabled", slog.String("provider", gothProvider.Name()), log.ScrubbedURL("callback", callbackURL))

		gothProviders = append(gothProviders, gothProvider)

		providers = append(providers, oauth2.Provider{
			ID:    gothProvider.Name(),
			Label: string(p.Label),
			Icon:  string(p.Icon),
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst))

	opts := []oauth2.OptionFunc{
		oauth2.WithProviders(providers...),
		oauth2.WithPrefix("/auth"),
		oauth2.WithAppTitle(string(conf.App.Title)),
		oauth2.WithOnLogin(NewOnLoginFromConfig(conf)),
		oauth2.WithPasswordLogin(store),
		oauth2.WithLoginMiddleware(rateLimiter.Middleware(ratelimit.RemoteAddr)),
	}

	auth := oauth2.NewHandler(
		sessionStore,
		store,
		opts...,
	)

	return auth, nil
})

func newSessionStoreFromConfig(conf *config.Config) (*sessions.CookieStore, error) {
	keyPairs := make([][]byte, 0)
	for _, k := range conf.HTTP.Session.Keys {
		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	if conf.HTTP.Session.Cookie.MaxAge != nil {
		sessionStore.MaxAge(int(time.Duration(*conf.HTTP.Session.Cookie.MaxAge) / time.Second))
	}

	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
}

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
