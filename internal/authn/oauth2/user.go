package oauth2

import (
	"github.com/bornholm/timetrack/internal/authn"
	"github.com/markbates/goth"
)

// User is the identity returned by an OAuth2 provider
type User struct {
	Subject  string
	Provider string

	DisplayName string
	Email       string
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

func newUserFromGoth(gothUser goth.User) *User {
	user := &User{
		Subject:     gothUser.UserID,
		Provider:    gothUser.Provider,
		DisplayName: gothUser.Name,
		Email:       gothUser.Email,
	}

	if user.DisplayName != "" {
		return user
	}

	rawPreferredUsername, exists := gothUser.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			user.DisplayName = preferredUsername
		}
	}

	if user.DisplayName == "" {
		user.DisplayName = gothUser.NickName
	}

	return user
}
