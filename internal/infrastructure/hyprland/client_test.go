package hyprland

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

type fakeExecutor struct {
	responses   map[string]string
	queryErr    error
	dispatched  []string
	reply       string
	dispatchErr error
}

func (f *fakeExecutor) Query(_ context.Context, command string) ([]byte, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []byte(f.responses[command]), nil
}

func (f *fakeExecutor) Dispatch(_ context.Context, command string) ([]byte, error) {
	f.dispatched = append(f.dispatched, command)
	if f.dispatchErr != nil {
		return nil, f.dispatchErr
	}
	return []byte(f.reply), nil
}

const clientsJSON = `[
  {"address": "0x55d1", "mapped": true, "workspace": {"id": 2, "name": "2"}, "class": "kitty", "title": "shell", "pid": 100},
  {"address": "0x55d2", "mapped": true, "workspace": {"id": -98, "name": "special:minimized"}, "class": "firefox", "title": "Docs", "pid": 101}
]`

func TestClient_Clients(t *testing.T) {
	c := NewClient(&fakeExecutor{responses: map[string]string{"clients": clientsJSON}})

	windows, err := c.Clients(context.Background())
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, entity.Window{
		Address:   "0x55d2",
		Class:     "firefox",
		Title:     "Docs",
		Workspace: entity.Workspace{ID: -98, Name: "special:minimized"},
	}, windows[1])
	assert.True(t, windows[1].IsMinimized())
	assert.False(t, windows[0].IsMinimized())
}

func TestClient_ActiveWindow(t *testing.T) {
	c := NewClient(&fakeExecutor{responses: map[string]string{
		"activewindow": `{"address": "0x55d1", "class": "kitty", "title": "shell", "workspace": {"id": 4, "name": "4"}}`,
	}})

	w, err := c.ActiveWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0x55d1", w.Address)
	assert.Equal(t, 4, w.Workspace.ID)
}

func TestClient_ActiveWindow_NothingFocused(t *testing.T) {
	c := NewClient(&fakeExecutor{responses: map[string]string{"activewindow": `{}`}})

	_, err := c.ActiveWindow(context.Background())
	assert.ErrorIs(t, err, entity.ErrWindowNotFound)
}

func TestClient_ActiveWorkspace(t *testing.T) {
	c := NewClient(&fakeExecutor{responses: map[string]string{
		"activeworkspace": `{"id": 5, "name": "5", "monitor": "DP-1", "windows": 2}`,
	}})

	ws, err := c.ActiveWorkspace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Workspace{ID: 5, Name: "5"}, ws)
}

func TestClient_QueryErrors(t *testing.T) {
	t.Run("subprocess failure", func(t *testing.T) {
		c := NewClient(&fakeExecutor{queryErr: errors.New("exit status 1")})
		_, err := c.Clients(context.Background())
		assert.ErrorIs(t, err, entity.ErrCompositor)
	})

	t.Run("malformed output", func(t *testing.T) {
		c := NewClient(&fakeExecutor{responses: map[string]string{"clients": "HYPRLAND_INSTANCE_SIGNATURE not set"}})
		_, err := c.Clients(context.Background())
		assert.ErrorIs(t, err, entity.ErrCompositor)
	})
}

func TestClient_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		execErr error
		wantErr bool
	}{
		{name: "ok reply", reply: "ok\n"},
		{name: "empty reply", reply: ""},
		{name: "error reply", reply: "Invalid dispatcher", wantErr: true},
		{name: "subprocess failure", execErr: errors.New("exit status 1"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExecutor{reply: tt.reply, dispatchErr: tt.execErr}
			err := NewClient(fake).Dispatch(context.Background(), "focuswindow address:0x1")

			assert.Equal(t, []string{"focuswindow address:0x1"}, fake.dispatched)
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrCompositor)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
