package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/hyprminimizer/internal/application/port/mocks"
	"github.com/bnema/hyprminimizer/internal/cli"
	"github.com/bnema/hyprminimizer/internal/cli/output"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/infrastructure/persistence/stackfile"
)

// resetFlags puts every flag of the command tree back to its default so
// consecutive executions of the package-level rootCmd do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type rootRun struct {
	stackDir string
	comp     *portmocks.MockCompositor
}

func newRootRun(t *testing.T) *rootRun {
	t.Helper()
	r := &rootRun{stackDir: t.TempDir(), comp: portmocks.NewMockCompositor(t)}

	t.Setenv("USER", "tester")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HYPRMINIMIZER_STACK_BASE_DIRECTORY", r.stackDir)
	t.Setenv("HYPRMINIMIZER_LOG_LEVEL", "error")

	resetFlags(rootCmd)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		app = nil
		appDeps = cli.Deps{}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return r
}

func (r *rootRun) push(t *testing.T, addresses ...string) {
	t.Helper()
	store := stackfile.New(filepath.Join(r.stackDir, stackfile.FilePrefix+"tester"))
	for _, a := range addresses {
		require.NoError(t, store.Push(context.Background(), a))
	}
}

func (r *rootRun) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	appDeps = cli.Deps{
		Compositor: r.comp,
		Publisher:  portmocks.NewMockTrayPublisher(t),
		Out:        &out,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExecute_RestoreLastFlag_EmptyStack(t *testing.T) {
	r := newRootRun(t)

	out, err := r.execute(t, "-r")
	require.NoError(t, err)
	assert.Contains(t, out, "No minimized windows in the stack to restore.")
	r.comp.AssertNotCalled(t, "Clients", mock.Anything)
}

func TestExecute_RestoreToFlagOverridesConfig(t *testing.T) {
	r := newRootRun(t)
	r.push(t, "0xBBB")

	r.comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{{Address: "0xBBB", Workspace: minimizedWS}}, nil)
	r.comp.EXPECT().Dispatch(mock.Anything, "focuswindow address:0xBBB").Return(nil).Once()

	out, err := r.execute(t, "restore", "--restore-to", "original")
	require.NoError(t, err)
	assert.Contains(t, out, "Window 0xBBB focused.")
	r.comp.AssertNotCalled(t, "ActiveWorkspace", mock.Anything)
}

func TestExecute_ListJSON(t *testing.T) {
	r := newRootRun(t)
	r.push(t, "0x1", "0x2")

	r.comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{
		{Address: "0x1", Class: "kitty", Workspace: minimizedWS},
		{Address: "0x2", Class: "firefox", Workspace: minimizedWS},
	}, nil)

	out, err := r.execute(t, "list", "--format", string(output.FormatJSON))
	require.NoError(t, err)

	var windows []entity.Window
	require.NoError(t, json.Unmarshal([]byte(out), &windows))
	require.Len(t, windows, 2)
	assert.Equal(t, "0x2", windows[0].Address)
	assert.Equal(t, "0x1", windows[1].Address)
}

func TestExecute_AddressWithRestoreFlag(t *testing.T) {
	r := newRootRun(t)

	_, err := r.execute(t, "-r", "0x1")
	assert.Error(t, err)
	r.comp.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestExecute_InvalidRestoreTarget(t *testing.T) {
	r := newRootRun(t)

	_, err := r.execute(t, "restore", "--restore-to", "elsewhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore_to")
}

func TestExecute_GenerateConfigFile(t *testing.T) {
	r := newRootRun(t)

	out, err := r.execute(t, "--generate-config-file")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config")
	assert.FileExists(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "hyprminimizer", "config.toml"))
	assert.Nil(t, GetApp(), "config generation must not build the app")
}

func TestExecute_Version(t *testing.T) {
	r := newRootRun(t)

	out, err := r.execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hyprminimizer ")
}
