package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/timetrack/internal/authn"
	"github.com/bornholm/timetrack/internal/identity"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var userMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,

		subject TEXT NOT NULL,
		provider TEXT NOT NULL,

		display_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',

		password BLOB,

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		UNIQUE (subject, provider)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`,
}

type User struct {
	ID int64

	Provider string
	Subject  string

	DisplayName string
	Email       string
	Role        string

	Password []byte

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

var _ authn.User = &User{}

func (u *User) Identity() *identity.User {
	return &identity.User{
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        u.Role,
	}
}

func (s *Store) FindOrCreateUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		existing, err := s.findUser(conn, subject, provider)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return errors.WithStack(err)
		}

		if existing != nil {
			user = existing
			return nil
		}

		query := fmt.Sprintf(`
			INSERT INTO users
				(subject, provider, created_at, updated_at)
			VALUES (?, ?, ?, ?) RETURNING %s;`,
			userAttributes,
		)

		now := time.Now().UTC().Unix()

		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider, now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				return errors.WithStack(s.bindUser(stmt, user))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (s *Store) FindUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		u, err := s.findUser(conn, subject, provider)
		if err != nil {
			return errors.WithStack(err)
		}

		user = u

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (s *Store) findUser(conn *sqlite.Conn, subject, provider string) (*User, error) {
	var user *User

	query := fmt.Sprintf(`SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1`, userAttributes)
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{subject, provider},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			user = &User{}
			return errors.WithStack(s.bindUser(stmt, user))
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

// SaveUser updates the profile attributes of the given user
func (s *Store) SaveUser(ctx context.Context, user *User) error {
	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC()

		err := sqlitex.Execute(conn, `UPDATE users SET display_name = ?, email = ?, role = ?, updated_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{user.DisplayName, user.Email, user.Role, now.Unix(), user.ID},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if conn.Changes() == 0 {
			return errors.WithStack(ErrNotFound)
		}

		user.UpdatedAt = time.Unix(now.Unix(), 0)

		return nil
	})
}

func (s *Store) MarkConnected(ctx context.Context, userID int64) error {
	return s.Do(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `UPDATE users SET connected_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{time.Now().UTC().Unix(), userID},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

func (s *Store) DeleteUsers(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		placeholders := make([]string, len(userIDs))
		args := make([]any, len(userIDs))

		for i, id := range userIDs {
			placeholders[i] = "?"
			args[i] = id
		}

		query := fmt.Sprintf("DELETE FROM users WHERE id IN (%s)", strings.Join(placeholders, ", "))

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: args,
		}))
	})
}

// GetUsers returns the users ordered by display name, then email
func (s *Store) GetUsers(ctx context.Context) ([]*User, error) {
	users := make([]*User, 0)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf("SELECT %s FROM users ORDER BY display_name COLLATE NOCASE, email COLLATE NOCASE, id", userAttributes)

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user := &User{}
				if err := s.bindUser(stmt, user); err != nil {
					return errors.WithStack(err)
				}

				users = append(users, user)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return users, errors.WithStack(err)
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, "SELECT COUNT(*) FROM users", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})

	return count, errors.WithStack(err)
}

var userAttributes = `id, subject, provider, display_name, email, role, password, created_at, updated_at, connected_at`

func (s *Store) bindUser(stmt *sqlite.Stmt, user *User) error {
	user.ID = stmt.ColumnInt64(0)
	user.Subject = stmt.ColumnText(1)
	user.Provider = stmt.ColumnText(2)
	user.DisplayName = stmt.ColumnText(3)
	user.Email = stmt.ColumnText(4)
	user.Role = stmt.ColumnText(5)

	user.Password = make([]byte, stmt.ColumnLen(6))
	stmt.ColumnBytes(6, user.Password)

	user.CreatedAt = time.Unix(stmt.ColumnInt64(7), 0)
	user.UpdatedAt = time.Unix(stmt.ColumnInt64(8), 0)
	user.ConnectedAt = time.Unix(stmt.ColumnInt64(9), 0)

	return nil
}
