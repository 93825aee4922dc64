package ui

import "github.com/bornholm/timetrack/internal/navigation"

const fallbackIconClass = "fa-circle"

var iconClasses = map[navigation.Icon]string{
	navigation.IconLayoutDashboard: "fa-table-columns",
	navigation.IconUser:            "fa-user",
	navigation.IconUsers:           "fa-users",
	navigation.IconClock:           "fa-clock",
	navigation.IconCalendarDays:    "fa-calendar-days",
	navigation.IconCalendar:        "fa-calendar",
	navigation.IconBell:            "fa-bell",
	navigation.IconBarChart:        "fa-chart-column",
	navigation.IconSettings:        "fa-gear",
	navigation.IconLogOut:          "fa-right-from-bracket",
	navigation.IconMenu:            "fa-bars",
	navigation.IconClose:           "fa-xmark",
	navigation.IconChevronRight:    "fa-chevron-right",
}

// IconClass returns the Font Awesome class rendering the given icon
func IconClass(icon navigation.Icon) string {
	class, exists := iconClasses[icon]
	if !exists {
		return fallbackIconClass
	}

	return class
}
