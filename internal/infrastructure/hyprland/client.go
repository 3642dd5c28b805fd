package hyprland

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/hyprminimizer/internal/application/port"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

// Client implements port.Compositor on top of an Executor.
type Client struct {
	exec Executor
}

var _ port.Compositor = (*Client)(nil)

// NewClient creates a client. A nil executor uses the real hyprctl binary.
func NewClient(exec Executor) *Client {
	if exec == nil {
		exec = NewHyprctlExecutor()
	}
	return &Client{exec: exec}
}

type workspaceJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type clientJSON struct {
	Address   string        `json:"address"`
	Class     string        `json:"class"`
	Title     string        `json:"title"`
	Workspace workspaceJSON `json:"workspace"`
}

func (c clientJSON) toEntity() entity.Window {
	return entity.Window{
		Address:   c.Address,
		Class:     c.Class,
		Title:     c.Title,
		Workspace: entity.Workspace(c.Workspace),
	}
}

func (c *Client) Clients(ctx context.Context) ([]entity.Window, error) {
	var raw []clientJSON
	if err := c.query(ctx, "clients", &raw); err != nil {
		return nil, err
	}
	windows := make([]entity.Window, len(raw))
	for i, r := range raw {
		windows[i] = r.toEntity()
	}
	return windows, nil
}

func (c *Client) ActiveWindow(ctx context.Context) (entity.Window, error) {
	var raw clientJSON
	if err := c.query(ctx, "activewindow", &raw); err != nil {
		return entity.Window{}, err
	}
	// hyprctl prints {} when nothing has focus.
	if raw.Address == "" {
		return entity.Window{}, fmt.Errorf("%w: no focused window", entity.ErrWindowNotFound)
	}
	return raw.toEntity(), nil
}

func (c *Client) ActiveWorkspace(ctx context.Context) (entity.Workspace, error) {
	var raw workspaceJSON
	if err := c.query(ctx, "activeworkspace", &raw); err != nil {
		return entity.Workspace{}, err
	}
	return entity.Workspace(raw), nil
}

// Dispatch sends a dispatcher command. hyprctl exits 0 on most failures and
// reports them on stdout, so anything other than "ok" is treated as an error.
func (c *Client) Dispatch(ctx context.Context, command string) error {
	log := logging.FromContext(ctx)

	out, err := c.exec.Dispatch(ctx, command)
	if err != nil {
		return fmt.Errorf("%w: dispatch %q: %w", entity.ErrCompositor, command, err)
	}
	reply := string(bytes.TrimSpace(out))
	if reply != "" && reply != "ok" {
		return fmt.Errorf("%w: dispatch %q: %s", entity.ErrCompositor, command, reply)
	}

	log.Debug().Str("command", command).Msg("dispatched")
	return nil
}

func (c *Client) query(ctx context.Context, command string, v any) error {
	out, err := c.exec.Query(ctx, command)
	if err != nil {
		return fmt.Errorf("%w: query %s: %w", entity.ErrCompositor, command, err)
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", entity.ErrCompositor, command, err)
	}
	return nil
}
