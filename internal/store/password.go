package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/authn/password"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ProviderLocal identifies the accounts authenticated by email and password
const ProviderLocal = "local"

var passwordCost = 14

type Account struct {
	Email       string
	DisplayName string
	Role        string
	Password    string
}

// SaveAccount creates or updates the local account matching the given email.
// The role and the password of an existing account follow the given ones
// but its display name, which users may edit, is kept. The stored hash is
// reused while it still matches the password.
func (s *Store) SaveAccount(ctx context.Context, account Account) (*User, error) {
	subject := normalizeEmail(account.Email)
	if subject == "" {
		return nil, errors.New("account email missing")
	}

	var hash []byte

	existing, err := s.FindUser(ctx, subject, ProviderLocal)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, errors.WithStack(err)
	}

	if existing != nil && verifyPassword([]byte(account.Password), existing.Password) {
		hash = existing.Password
	} else {
		hash, err = hashPassword(account.Password)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var user *User
	err = s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`
			INSERT INTO users
				(subject, provider, display_name, email, role, password, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (subject, provider) DO UPDATE SET
				display_name = CASE WHEN users.display_name = '' THEN excluded.display_name ELSE users.display_name END,
				email = excluded.email,
				role = excluded.role,
				password = excluded.password,
				updated_at = excluded.updated_at
			RETURNING %s;`,
			userAttributes,
		)

		now := time.Now().UTC().Unix()

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, ProviderLocal, account.DisplayName, account.Email, account.Role, hash, now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(s.bindUser(stmt, user))
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Authenticate implements password.UserProvider.
func (s *Store) Authenticate(ctx context.Context, email string, pass string) (authn.User, error) {
	user, err := s.FindUser(ctx, normalizeEmail(email), ProviderLocal)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errors.WithStack(authn.ErrUnauthenticated)
		}

		return nil, errors.WithStack(err)
	}

	if !verifyPassword([]byte(pass), user.Password) {
		return nil, errors.WithStack(authn.ErrUnauthenticated)
	}

	return user, nil
}

var _ password.UserProvider = &Store{}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) ([]byte, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes, err
}

func verifyPassword(password, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}

	err := bcrypt.CompareHashAndPassword(hash, password)
	return err == nil
}
