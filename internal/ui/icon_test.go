package ui

import (
	"testing"

	"github.com/bornholm/timetrack/internal/navigation"
)

func TestIconClass(t *testing.T) {
	for _, e := range navigation.Entries() {
		if IconClass(e.Icon) == fallbackIconClass {
			t.Errorf("IconClass(%s): expected a dedicated class for entry '%s'", e.Icon, e.Label)
		}
	}

	if e, g := fallbackIconClass, IconClass(navigation.Icon(999)); e != g {
		t.Errorf("IconClass(999): expected '%v', got '%v'", e, g)
	}

	if e, g := fallbackIconClass, IconClass(navigation.IconNone); e != g {
		t.Errorf("IconClass(IconNone): expected '%v', got '%v'", e, g)
	}
}
