package tray

import (
	"context"
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// Compile-time interface check.
var _ port.TrayPublisher = (*Publisher)(nil)

// Publisher serves tray icons on the session bus, one connection per icon.
type Publisher struct {
	connect func() (*dbus.Conn, error)
	pid     int
}

func NewPublisher() *Publisher {
	return &Publisher{
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
		pid:     os.Getpid(),
	}
}

// Publish acquires the per-process bus name and exports the icon and menu
// objects. The connection outlives ctx; it is released by Registration.Close.
func (p *Publisher) Publish(ctx context.Context, window entity.Window, actions port.TrayActions) (port.TrayRegistration, error) {
	log := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrIPCSetup, err)
	}

	conn, err := p.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: connect to session bus: %w", entity.ErrIPCSetup, err)
	}

	busName := BusName(p.pid)
	if err := p.export(ctx, conn, busName, window, actions); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug().Str("bus_name", busName).Msg("tray objects exported")
	return newRegistration(conn, busName), nil
}

func (p *Publisher) export(ctx context.Context, conn *dbus.Conn, busName string, window entity.Window, actions port.TrayActions) error {
	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("%w: request name %s: %w", entity.ErrIPCSetup, busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("%w: name %s already taken", entity.ErrIPCSetup, busName)
	}

	// Handlers outlive the setup deadline; keep the logger, drop the cancellation.
	handlerCtx := logging.WithComponent(context.WithoutCancel(ctx), "tray")

	item := newStatusNotifierItem(handlerCtx, window, actions)
	if err := exportObject(conn, itemPath, itemInterface, item, item.properties()); err != nil {
		return err
	}

	menu := newDBusMenu(handlerCtx, window, actions)
	if err := exportObject(conn, menuPath, menuInterface, menu, menu.properties()); err != nil {
		return err
	}
	return nil
}

func exportObject(conn *dbus.Conn, path dbus.ObjectPath, iface string, obj any, props map[string]*prop.Prop) error {
	if err := conn.Export(obj, path, iface); err != nil {
		return fmt.Errorf("%w: export %s: %w", entity.ErrIPCSetup, path, err)
	}

	properties, err := prop.Export(conn, path, prop.Map{iface: props})
	if err != nil {
		return fmt.Errorf("%w: export %s properties: %w", entity.ErrIPCSetup, path, err)
	}

	node := &introspect.Node{
		Name: string(path),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       iface,
				Methods:    introspect.Methods(obj),
				Properties: properties.Introspection(iface),
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), path, "org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("%w: export %s introspection: %w", entity.ErrIPCSetup, path, err)
	}
	return nil
}
