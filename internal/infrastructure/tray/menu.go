package tray

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

const (
	layoutRevision = uint32(2)

	itemOpen         int32 = 1
	itemOpenOriginal int32 = 2
	itemClose        int32 = 3

	eventClicked = "clicked"
)

// menuLayout is the (ia{sv}av) node returned by GetLayout.
type menuLayout struct {
	ID         int32
	Properties map[string]dbus.Variant
	Children   []dbus.Variant
}

// menuItemProperties is the (ia{sv}) element returned by GetGroupProperties.
type menuItemProperties struct {
	ID         int32
	Properties map[string]dbus.Variant
}

// menuEvent is the (isvu) element accepted by EventGroup.
type menuEvent struct {
	ID        int32
	EventID   string
	Data      dbus.Variant
	Timestamp uint32
}

// DBusMenu serves a fixed three-entry menu: open, open on original workspace, close.
type DBusMenu struct {
	ctx     context.Context
	window  entity.Window
	actions port.TrayActions
}

func newDBusMenu(ctx context.Context, window entity.Window, actions port.TrayActions) *DBusMenu {
	return &DBusMenu{ctx: ctx, window: window, actions: actions}
}

func (m *DBusMenu) labels() map[int32]string {
	title := m.window.DisplayTitle()
	return map[int32]string{
		itemOpen:         "Open " + title,
		itemOpenOriginal: fmt.Sprintf("Open on original workspace (%d)", m.window.Workspace.ID),
		itemClose:        "Close " + title,
	}
}

func (m *DBusMenu) itemProperties(id int32) (map[string]dbus.Variant, bool) {
	label, ok := m.labels()[id]
	if !ok {
		return nil, false
	}
	return map[string]dbus.Variant{
		"type":    dbus.MakeVariant("standard"),
		"label":   dbus.MakeVariant(label),
		"enabled": dbus.MakeVariant(true),
		"visible": dbus.MakeVariant(true),
	}, true
}

// GetLayout returns the whole menu regardless of parent id and depth.
func (m *DBusMenu) GetLayout(parentID, recursionDepth int32, propertyNames []string) (uint32, menuLayout, *dbus.Error) {
	children := make([]dbus.Variant, 0, 3)
	for _, id := range []int32{itemOpen, itemOpenOriginal, itemClose} {
		props, _ := m.itemProperties(id)
		children = append(children, dbus.MakeVariant(menuLayout{
			ID:         id,
			Properties: props,
			Children:   []dbus.Variant{},
		}))
	}

	root := menuLayout{
		ID:         0,
		Properties: map[string]dbus.Variant{"children-display": dbus.MakeVariant("submenu")},
		Children:   children,
	}
	return layoutRevision, root, nil
}

// GetGroupProperties returns the properties of the requested ids. Unknown ids are skipped.
func (m *DBusMenu) GetGroupProperties(ids []int32, propertyNames []string) ([]menuItemProperties, *dbus.Error) {
	result := make([]menuItemProperties, 0, len(ids))
	for _, id := range ids {
		props, ok := m.itemProperties(id)
		if !ok {
			continue
		}
		result = append(result, menuItemProperties{ID: id, Properties: props})
	}
	return result, nil
}

// GetProperty returns one property of one item.
func (m *DBusMenu) GetProperty(id int32, name string) (dbus.Variant, *dbus.Error) {
	props, ok := m.itemProperties(id)
	if !ok {
		return dbus.Variant{}, dbus.NewError(errorFailedMethod, []any{fmt.Sprintf("unknown menu item %d", id)})
	}
	v, ok := props[name]
	if !ok {
		return dbus.Variant{}, dbus.NewError(errorFailedMethod, []any{fmt.Sprintf("unknown property %q", name)})
	}
	return v, nil
}

func (m *DBusMenu) Event(id int32, eventID string, data dbus.Variant, timestamp uint32) *dbus.Error {
	m.handleEvent(id, eventID)
	return nil
}

// EventGroup handles a batch of events in order. No id is ever reported as failed.
func (m *DBusMenu) EventGroup(events []menuEvent) ([]int32, *dbus.Error) {
	for _, e := range events {
		m.handleEvent(e.ID, e.EventID)
	}
	return []int32{}, nil
}

func (m *DBusMenu) AboutToShow(id int32) (bool, *dbus.Error) {
	return false, nil
}

func (m *DBusMenu) AboutToShowGroup(ids []int32) ([]int32, []int32, *dbus.Error) {
	return []int32{}, []int32{}, nil
}

func (m *DBusMenu) handleEvent(id int32, eventID string) {
	if eventID != eventClicked {
		return
	}
	switch id {
	case itemOpen:
		m.actions.OpenOnActive(m.ctx)
	case itemOpenOriginal:
		m.actions.OpenOnOriginal(m.ctx)
	case itemClose:
		m.actions.Close(m.ctx)
	default:
		logging.FromContext(m.ctx).Debug().Int32("id", id).Msg("click on unknown menu item")
	}
}

func (m *DBusMenu) properties() map[string]*prop.Prop {
	return map[string]*prop.Prop{
		"Version":       constProp(uint32(3)),
		"TextDirection": constProp("ltr"),
		"Status":        constProp("normal"),
	}
}
