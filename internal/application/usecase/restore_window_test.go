package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/hyprminimizer/internal/application/port/mocks"
	"github.com/bnema/hyprminimizer/internal/application/usecase"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	repomocks "github.com/bnema/hyprminimizer/internal/domain/repository/mocks"
)

func TestRestoreWindowUseCase_RestoreLast_MovesToActiveWorkspace(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := &memStack{entries: []string{"0xBBB"}}
	rec := recordDispatches(comp)

	comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{minimizedAt("0xBBB", -5)}, nil)
	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 2}, nil)

	uc := usecase.NewRestoreWindowUseCase(stack, comp)
	out, err := uc.RestoreLast(ctx, usecase.RestoreLastInput{Target: entity.RestoreTargetActive})
	require.NoError(t, err)

	assert.Equal(t, usecase.RestoreDone, out.Outcome)
	assert.Equal(t, "0xBBB", out.Address)
	assert.True(t, out.Moved)
	assert.Equal(t, 2, out.WorkspaceID)
	assert.Equal(t, []string{
		"movetoworkspace 2,address:0xBBB",
		"focuswindow address:0xBBB",
	}, rec.recorded())
	assert.Empty(t, stack.snapshot())
}

func TestRestoreWindowUseCase_RestoreLast_DefaultsToActive(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := &memStack{entries: []string{"0xBBB"}}
	rec := recordDispatches(comp)

	comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{minimizedAt("0xBBB", -5)}, nil)
	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 7}, nil)

	out, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreLast(ctx, usecase.RestoreLastInput{})
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, "movetoworkspace 7,address:0xBBB", rec.recorded()[0])
}

func TestRestoreWindowUseCase_RestoreLast_OriginalTargetOnlyFocuses(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := &memStack{entries: []string{"0xBBB"}}
	rec := recordDispatches(comp)

	comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{minimizedAt("0xBBB", -5)}, nil)

	out, err := usecase.NewRestoreWindowUseCase(stack, comp).
		RestoreLast(ctx, usecase.RestoreLastInput{Target: entity.RestoreTargetOriginal})
	require.NoError(t, err)

	assert.Equal(t, usecase.RestoreDone, out.Outcome)
	assert.False(t, out.Moved)
	assert.Equal(t, []string{"focuswindow address:0xBBB"}, rec.recorded())
	comp.AssertNotCalled(t, "ActiveWorkspace", mock.Anything)
}

func TestRestoreWindowUseCase_RestoreLast_AlreadyRestored(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := &memStack{entries: []string{"0xCCC"}}

	comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{
		{Address: "0xCCC", Workspace: entity.Workspace{ID: 3}},
	}, nil)

	out, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreLast(ctx, usecase.RestoreLastInput{})
	require.NoError(t, err)

	assert.Equal(t, usecase.RestoreStale, out.Outcome)
	comp.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	assert.Empty(t, stack.snapshot())
}

func TestRestoreWindowUseCase_RestoreLast_WindowGone(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := &memStack{entries: []string{"0xA", "0xGONE"}}

	comp.EXPECT().Clients(mock.Anything).Return([]entity.Window{minimizedAt("0xA", -98)}, nil)

	out, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreLast(ctx, usecase.RestoreLastInput{})
	require.NoError(t, err)

	assert.Equal(t, usecase.RestoreStale, out.Outcome)
	assert.Equal(t, "0xGONE", out.Address)
	assert.Equal(t, []string{"0xA"}, stack.snapshot())
}

func TestRestoreWindowUseCase_RestoreLast_EmptyStack(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := repomocks.NewMockWindowStackRepository(t)
	stack.EXPECT().Pop(mock.Anything).Return("", false, nil).Twice()

	uc := usecase.NewRestoreWindowUseCase(stack, comp)
	for range 2 {
		out, err := uc.RestoreLast(ctx, usecase.RestoreLastInput{})
		require.NoError(t, err)
		assert.Equal(t, usecase.RestoreNothing, out.Outcome)
	}
	comp.AssertNotCalled(t, "Clients", mock.Anything)
}

func TestRestoreWindowUseCase_RestoreLast_PopFailure(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := repomocks.NewMockWindowStackRepository(t)
	stack.EXPECT().Pop(mock.Anything).Return("", false, entity.ErrStackIO)

	_, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreLast(ctx, usecase.RestoreLastInput{})
	require.ErrorIs(t, err, entity.ErrStackIO)
}

func TestRestoreWindowUseCase_RestoreAddress(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := repomocks.NewMockWindowStackRepository(t)
	rec := recordDispatches(comp)

	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 1}, nil)
	stack.EXPECT().Remove(mock.Anything, "0xDDD").Return(nil)

	out, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreAddress(ctx, "0xDDD")
	require.NoError(t, err)
	assert.Equal(t, usecase.RestoreDone, out.Outcome)
	assert.Equal(t, []string{
		"movetoworkspace 1,address:0xDDD",
		"focuswindow address:0xDDD",
	}, rec.recorded())
}

func TestRestoreWindowUseCase_RestoreAddress_DispatchFailureKeepsStack(t *testing.T) {
	ctx := testContext()
	comp := portmocks.NewMockCompositor(t)
	stack := repomocks.NewMockWindowStackRepository(t)
	rec := recordDispatches(comp)
	rec.fail["movetoworkspace 1,address:0xDDD"] = entity.ErrCompositor

	comp.EXPECT().ActiveWorkspace(mock.Anything).Return(entity.Workspace{ID: 1}, nil)

	_, err := usecase.NewRestoreWindowUseCase(stack, comp).RestoreAddress(ctx, "0xDDD")
	require.ErrorIs(t, err, entity.ErrCompositor)
	stack.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
