package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/timetrack/internal/config"
	"github.com/bornholm/timetrack/internal/store"
	"github.com/pkg/errors"
)

var NewStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	funcs := []store.OptionFunc{}
	if conf.Store.BusyTimeout != nil {
		funcs = append(funcs, store.WithBusyTimeout(time.Duration(*conf.Store.BusyTimeout)))
	}

	store := store.NewStore(string(conf.Store.Path), funcs...)

	if err := store.HealthCheck(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := seedAccounts(ctx, store, conf.Auth.Accounts); err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})

func seedAccounts(ctx context.Context, st *store.Store, accounts []config.Account) error {
	for _, a := range accounts {
		if a.Email == "" || a.Password == "" {
			continue
		}

		user, err := st.SaveAccount(ctx, store.Account{
			Email:       string(a.Email),
			DisplayName: string(a.DisplayName),
			Role:        string(a.Role),
			Password:    string(a.Password),
		})
		if err != nil {
			return errors.Wrapf(err, "could not save account '%s'", a.Email)
		}

		slog.DebugContext(ctx, "local account saved", slog.String("email", user.Email), slog.String("role", user.Role))
	}

	return nil
}
