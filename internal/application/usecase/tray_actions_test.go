package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	portmocks "github.com/bnema/hyprminimizer/internal/application/port/mocks"
	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

var trayWindow = entity.Window{
	Address:   "0xAAA",
	Class:     "firefox",
	Title:     "Docs",
	Workspace: entity.Workspace{ID: 3},
}

func assertFiredOnce(t *testing.T, exit *usecase.ExitSignal) {
	t.Helper()
	select {
	case <-exit.Done():
	default:
		t.Fatal("exit signal not fired")
	}
	select {
	case <-exit.Done():
		t.Fatal("exit signal fired more than once")
	default:
	}
}

func TestWindowTrayActions_OpenOnActive(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	rec := recordDispatches(comp)
	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 5}, nil)

	exit := usecase.NewExitSignal()
	actions := usecase.NewWindowTrayActions(comp, trayWindow, exit)

	actions.OpenOnActive(ctx)

	assert.Equal(t, []string{
		"movetoworkspace 5,address:0xAAA",
		"focuswindow address:0xAAA",
	}, rec.recorded())
	assertFiredOnce(t, exit)
}

func TestWindowTrayActions_OpenOnActive_DispatchFailureStillFires(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	rec := recordDispatches(comp)
	rec.fail["movetoworkspace 5,address:0xAAA"] = errors.New("hyprctl exited 1")
	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 5}, nil)

	exit := usecase.NewExitSignal()
	usecase.NewWindowTrayActions(comp, trayWindow, exit).OpenOnActive(ctx)

	assert.Equal(t, []string{"movetoworkspace 5,address:0xAAA"}, rec.recorded())
	assertFiredOnce(t, exit)
}

func TestWindowTrayActions_OpenOnActive_WorkspaceQueryFailure(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{}, entity.ErrCompositor)

	exit := usecase.NewExitSignal()
	usecase.NewWindowTrayActions(comp, trayWindow, exit).OpenOnActive(ctx)

	comp.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	assertFiredOnce(t, exit)
}

func TestWindowTrayActions_OpenOnOriginal(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	rec := recordDispatches(comp)

	exit := usecase.NewExitSignal()
	usecase.NewWindowTrayActions(comp, trayWindow, exit).OpenOnOriginal(ctx)

	assert.Equal(t, []string{
		"movetoworkspace 3,address:0xAAA",
		"focuswindow address:0xAAA",
	}, rec.recorded())
	assertFiredOnce(t, exit)
}

func TestWindowTrayActions_Close(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	rec := recordDispatches(comp)

	exit := usecase.NewExitSignal()
	usecase.NewWindowTrayActions(comp, trayWindow, exit).Close(ctx)

	assert.Equal(t, []string{"closewindow address:0xAAA"}, rec.recorded())
	assertFiredOnce(t, exit)
}

func TestExitSignal_FireIsNotCounted(t *testing.T) {
	exit := usecase.NewExitSignal()
	exit.Fire()
	exit.Fire()
	exit.Fire()
	assertFiredOnce(t, exit)

	exit.Fire()
	assertFiredOnce(t, exit)
}
