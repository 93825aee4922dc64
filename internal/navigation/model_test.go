package navigation

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestModelActive(t *testing.T) {
	model := NewModel()

	type testCase struct {
		RouteKey       string
		ExpectedActive string
	}

	testCases := []testCase{}
	for _, e := range Entries() {
		testCases = append(testCases, testCase{RouteKey: e.RouteKey, ExpectedActive: e.RouteKey})
	}

	testCases = append(testCases,
		testCase{RouteKey: "", ExpectedActive: ""},
		testCase{RouteKey: "dashboard", ExpectedActive: ""},
		testCase{RouteKey: "Dash", ExpectedActive: ""},
		testCase{RouteKey: "MyProfile/Edit", ExpectedActive: ""},
		testCase{RouteKey: "My Profile", ExpectedActive: ""},
	)

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			active := 0
			for _, e := range model.Entries() {
				if !model.IsActive(e, tc.RouteKey) {
					continue
				}

				active++

				if e, g := tc.ExpectedActive, e.RouteKey; e != g {
					t.Errorf("active entry: expected '%v', got '%v'", e, g)
				}
			}

			expectedCount := 1
			if tc.ExpectedActive == "" {
				expectedCount = 0
			}

			if e, g := expectedCount, active; e != g {
				t.Errorf("active entries count: expected '%v', got '%v'", e, g)
			}

			entry, found := model.Active(tc.RouteKey)
			if e, g := tc.ExpectedActive != "", found; e != g {
				t.Fatalf("found: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedActive, entry.RouteKey; e != g {
				t.Errorf("entry.RouteKey: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestEntriesOrder(t *testing.T) {
	expected := []string{
		"Dashboard", "My Profile", "Employees", "Timesheet", "Shifts",
		"Leave", "Alerts", "Reports", "Settings",
	}

	entries := Entries()

	if e, g := len(expected), len(entries); e != g {
		t.Fatalf("len(entries): expected '%v', got '%v'", e, g)
	}

	for idx, label := range expected {
		if e, g := label, entries[idx].Label; e != g {
			t.Errorf("entries[%d].Label: expected '%v', got '%v'", idx, e, g)
		}

		if entries[idx].Icon == IconNone {
			t.Errorf("entries[%d].Icon: expected an icon", idx)
		}
	}

	// Mutating the returned slice must not leak into the package state
	entries[0].Label = "Changed"

	if e, g := "Dashboard", Entries()[0].Label; e != g {
		t.Errorf("Entries()[0].Label: expected '%v', got '%v'", e, g)
	}
}

func TestPageResolver(t *testing.T) {
	type testCase struct {
		Prefix   string
		RouteKey string
		Expected string
	}

	testCases := []testCase{
		{Prefix: "", RouteKey: "Dashboard", Expected: "/dashboard"},
		{Prefix: "", RouteKey: "MyProfile", Expected: "/myprofile"},
		{Prefix: "", RouteKey: "Time Off", Expected: "/time-off"},
		{Prefix: "/app/", RouteKey: "Reports", Expected: "/app/reports"},
		{Prefix: "/app", RouteKey: "Reports", Expected: "/app/reports"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			resolver := PageResolver{Prefix: tc.Prefix}
			if e, g := tc.Expected, resolver.URL(tc.RouteKey); e != g {
				t.Errorf("URL(%q): expected '%v', got '%v'", tc.RouteKey, e, g)
			}
		})
	}
}

func TestModelLookup(t *testing.T) {
	model := NewModel()

	entry, err := model.Lookup("/employees")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := RouteEmployees, entry.RouteKey; e != g {
		t.Errorf("entry.RouteKey: expected '%v', got '%v'", e, g)
	}

	if _, err := model.Lookup("/nowhere"); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("err: expected ErrUnknownRoute, got '%v'", err)
	}

	if _, err := model.Find("Nowhere"); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("err: expected ErrUnknownRoute, got '%v'", err)
	}
}
