package shell

import "github.com/pkg/errors"

var ErrUnknownDrawerEvent = errors.New("unknown drawer event")

type DrawerEvent string

const (
	DrawerToggleOpen  DrawerEvent = "toggle-open"
	DrawerToggleClose DrawerEvent = "toggle-close"
	DrawerDismiss     DrawerEvent = "dismiss"
	DrawerNavigate    DrawerEvent = "navigate"
)

func ParseDrawerEvent(raw string) (DrawerEvent, error) {
	switch ev := DrawerEvent(raw); ev {
	case DrawerToggleOpen, DrawerToggleClose, DrawerDismiss, DrawerNavigate:
		return ev, nil
	default:
		return "", errors.Wrapf(ErrUnknownDrawerEvent, "'%s'", raw)
	}
}

// NextDrawerState returns the drawer state following the given event.
// Events which do not apply to the current state leave it unchanged.
func NextDrawerState(open bool, ev DrawerEvent) bool {
	switch ev {
	case DrawerToggleOpen:
		return true
	case DrawerToggleClose, DrawerDismiss, DrawerNavigate:
		return false
	default:
		return open
	}
}

type DrawerState string

const (
	DrawerOpen   DrawerState = "open"
	DrawerClosed DrawerState = "closed"
)

func drawerState(open bool) DrawerState {
	if open {
		return DrawerOpen
	}
	return DrawerClosed
}

func ParseDrawerState(raw string) bool {
	return DrawerState(raw) == DrawerOpen
}
