package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/authz"
	"github.com/bornholm/timetrack/internal/config"
	"github.com/bornholm/timetrack/internal/navigation"
	"github.com/bornholm/timetrack/internal/pages"
	"github.com/bornholm/timetrack/internal/pprof"
	"github.com/bornholm/timetrack/pkg/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"

	sloghttp "github.com/samber/slog-http"
)

const roleAdmin = "admin"

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/auth/", slogMiddleware(oauth2Handler))

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	model := navigation.NewModel()

	policy, err := NewPolicyFromConfig(ctx, conf, model)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	uiAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(true),
		),
	)

	pagesHandler := pages.NewHandler(
		oauth2Handler, store,
		pages.WithModel(model),
		pages.WithPolicy(policy),
		pages.WithTitle(string(conf.App.Title), string(conf.App.Subtitle)),
		pages.WithLoginURL("/auth/login"),
		pages.WithProfileMiddleware(uiAuth),
	)

	mux.Handle("/", slogMiddleware(pagesHandler))

	if conf.Debug.PProf {
		slog.WarnContext(ctx, "runtime profiles exposed", slog.String("path", "/debug/pprof/"))
		mux.Handle("/debug/pprof/", pprof.NewHandler("/debug/pprof", uiAuth, authz.RequireRole(roleAdmin)))
	}

	return withRequestID(mux), nil
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := xid.New().String()

		w.Header().Set("X-Request-Id", requestID)

		ctx := log.WithAttrs(r.Context(), slog.String("requestId", requestID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
