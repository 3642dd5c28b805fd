// Package tray publishes a minimized window as a StatusNotifierItem with a
// com.canonical.dbusmenu context menu on the session bus.
package tray

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busNamePrefix = "org.kde.StatusNotifierItem.minimizer"

	itemInterface = "org.kde.StatusNotifierItem"
	itemPath      = dbus.ObjectPath("/StatusNotifierItem")

	menuInterface = "com.canonical.dbusmenu"
	menuPath      = dbus.ObjectPath("/Menu")

	watcherName      = "org.kde.StatusNotifierWatcher"
	watcherPath      = dbus.ObjectPath("/StatusNotifierWatcher")
	watcherInterface = "org.kde.StatusNotifierWatcher"

	dbusInterface     = "org.freedesktop.DBus"
	nameOwnerChanged  = "NameOwnerChanged"
	nameOwnerSignal   = dbusInterface + "." + nameOwnerChanged
	registerItemCall  = watcherInterface + ".RegisterStatusNotifierItem"
	errorFailedMethod = "org.freedesktop.DBus.Error.Failed"
)

// BusName returns the per-process name an icon is served under.
func BusName(pid int) string {
	return fmt.Sprintf("%s.p%d", busNamePrefix, pid)
}
