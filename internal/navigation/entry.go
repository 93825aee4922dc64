package navigation

import "github.com/pkg/errors"

var ErrUnknownRoute = errors.New("unknown route")

// Entry is a navigation link of the shell
type Entry struct {
	Label    string
	RouteKey string
	Icon     Icon
}

const (
	RouteDashboard = "Dashboard"
	RouteMyProfile = "MyProfile"
	RouteEmployees = "Employees"
	RouteTimesheet = "Timesheet"
	RouteShifts    = "Shifts"
	RouteLeave     = "Leave"
	RouteAlerts    = "Alerts"
	RouteReports   = "Reports"
	RouteSettings  = "Settings"
)

// Display order matters.
var entries = []Entry{
	{Label: "Dashboard", RouteKey: RouteDashboard, Icon: IconLayoutDashboard},
	{Label: "My Profile", RouteKey: RouteMyProfile, Icon: IconUser},
	{Label: "Employees", RouteKey: RouteEmployees, Icon: IconUsers},
	{Label: "Timesheet", RouteKey: RouteTimesheet, Icon: IconClock},
	{Label: "Shifts", RouteKey: RouteShifts, Icon: IconCalendarDays},
	{Label: "Leave", RouteKey: RouteLeave, Icon: IconCalendar},
	{Label: "Alerts", RouteKey: RouteAlerts, Icon: IconBell},
	{Label: "Reports", RouteKey: RouteReports, Icon: IconBarChart},
	{Label: "Settings", RouteKey: RouteSettings, Icon: IconSettings},
}

// Entries returns a copy of the default navigation entries
func Entries() []Entry {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return copied
}
