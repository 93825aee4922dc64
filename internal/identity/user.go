package identity

import (
	"strings"
	"unicode/utf8"
)

const fallbackInitials = "U"

// Initials returns up to two characters made of the first letter of each
// word of the user's display name, or "U" when there is nothing to use.
func Initials(user *User) string {
	if user == nil {
		return fallbackInitials
	}

	var initials []rune
	for _, word := range strings.Fields(user.DisplayName) {
		r, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, r)
		if len(initials) == 2 {
			break
		}
	}

	if len(initials) == 0 {
		return fallbackInitials
	}

	return string(initials)
}

// Label returns the display name of the user, falling back to the email
func Label(user *User) string {
	if user == nil {
		return ""
	}

	if user.DisplayName != "" {
		return user.DisplayName
	}

	return user.Email
}
