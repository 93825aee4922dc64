package identity

import (
	"fmt"
	"testing"
)

func TestInitials(t *testing.T) {
	type testCase struct {
		User     *User
		Expected string
	}

	testCases := []testCase{
		{User: &User{DisplayName: "Jane Doe"}, Expected: "JD"},
		{User: &User{DisplayName: "Madonna"}, Expected: "M"},
		{User: &User{DisplayName: "Jean Claude Van Damme"}, Expected: "JC"},
		{User: &User{DisplayName: "  jane   doe  "}, Expected: "jd"},
		{User: &User{DisplayName: "Émile Zola"}, Expected: "ÉZ"},
		{User: &User{DisplayName: ""}, Expected: "U"},
		{User: &User{DisplayName: " \t "}, Expected: "U"},
		{User: &User{Email: "jane@example.com"}, Expected: "U"},
		{User: nil, Expected: "U"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			if e, g := tc.Expected, Initials(tc.User); e != g {
				t.Errorf("Initials(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if e, g := "Jane Doe", Label(&User{DisplayName: "Jane Doe", Email: "jane@example.com"}); e != g {
		t.Errorf("Label(): expected '%v', got '%v'", e, g)
	}

	if e, g := "jane@example.com", Label(&User{Email: "jane@example.com"}); e != g {
		t.Errorf("Label(): expected '%v', got '%v'", e, g)
	}

	if e, g := "", Label(nil); e != g {
		t.Errorf("Label(): expected '%v', got '%v'", e, g)
	}
}
