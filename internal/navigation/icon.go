package navigation

// Icon identifies one of the glyphs the shell knows how to render.
// Renderers map it through a lookup table, see ui.IconClass.
type Icon int

const (
	IconNone Icon = iota
	IconLayoutDashboard
	IconUser
	IconUsers
	IconClock
	IconCalendarDays
	IconCalendar
	IconBell
	IconBarChart
	IconSettings
	IconLogOut
	IconMenu
	IconClose
	IconChevronRight
)

var iconNames = map[Icon]string{
	IconNone:            "none",
	IconLayoutDashboard: "layout-dashboard",
	IconUser:            "user",
	IconUsers:           "users",
	IconClock:           "clock",
	IconCalendarDays:    "calendar-days",
	IconCalendar:        "calendar",
	IconBell:            "bell",
	IconBarChart:        "bar-chart",
	IconSettings:        "settings",
	IconLogOut:          "log-out",
	IconMenu:            "menu",
	IconClose:           "close",
	IconChevronRight:    "chevron-right",
}

func (i Icon) String() string {
	name, exists := iconNames[i]
	if !exists {
		return "none"
	}

	return name
}
