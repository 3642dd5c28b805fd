package tray

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// iconPixmap is the (iiay) element of a StatusNotifierItem pixmap list.
type iconPixmap struct {
	Width  int32
	Height int32
	Data   []byte
}

// toolTip is the (sa(iiay)ss) ToolTip property.
type toolTip struct {
	IconName    string
	IconPixmaps []iconPixmap
	Title       string
	Description string
}

// StatusNotifierItem is the tray icon object. Left click restores the window
// to the active workspace, middle click closes it.
type StatusNotifierItem struct {
	ctx     context.Context
	window  entity.Window
	actions port.TrayActions
}

func newStatusNotifierItem(ctx context.Context, window entity.Window, actions port.TrayActions) *StatusNotifierItem {
	return &StatusNotifierItem{ctx: ctx, window: window, actions: actions}
}

// Activate is called by the host on primary click.
func (i *StatusNotifierItem) Activate(x, y int32) *dbus.Error {
	i.actions.OpenOnActive(i.ctx)
	return nil
}

// SecondaryActivate is called by the host on middle click.
func (i *StatusNotifierItem) SecondaryActivate(x, y int32) *dbus.Error {
	i.actions.Close(i.ctx)
	return nil
}

func (i *StatusNotifierItem) properties() map[string]*prop.Prop {
	return map[string]*prop.Prop{
		"Category":   constProp("ApplicationStatus"),
		"Id":         constProp(i.window.Class),
		"Title":      constProp(i.window.DisplayTitle()),
		"Status":     constProp("Active"),
		"IconName":   constProp(i.window.Class),
		"ToolTip":    constProp(toolTip{IconPixmaps: []iconPixmap{}, Title: i.window.DisplayTitle()}),
		"ItemIsMenu": constProp(false),
		"Menu":       constProp(menuPath),
	}
}

func constProp(v any) *prop.Prop {
	return &prop.Prop{Value: v, Writable: false, Emit: prop.EmitConst}
}
