// Hand-maintained in the mockery expecter layout described by .mockery.yaml.

package mocks

import (
	context "context"

	entity "github.com/bnema/hyprminimizer/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockCompositor is a mock type for the Compositor type
type MockCompositor struct {
	mock.Mock
}

type MockCompositor_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCompositor) EXPECT() *MockCompositor_Expecter {
	return &MockCompositor_Expecter{mock: &_m.Mock}
}

// ActiveWindow provides a mock function with given fields: ctx
func (_m *MockCompositor) ActiveWindow(ctx context.Context) (entity.Window, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ActiveWindow")
	}

	var r0 entity.Window
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (entity.Window, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) entity.Window); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(entity.Window)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCompositor_ActiveWindow_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ActiveWindow'
type MockCompositor_ActiveWindow_Call struct {
	*mock.Call
}

// ActiveWindow is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCompositor_Expecter) ActiveWindow(ctx interface{}) *MockCompositor_ActiveWindow_Call {
	return &MockCompositor_ActiveWindow_Call{Call: _e.mock.On("ActiveWindow", ctx)}
}

func (_c *MockCompositor_ActiveWindow_Call) Run(run func(ctx context.Context)) *MockCompositor_ActiveWindow_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockCompositor_ActiveWindow_Call) Return(_a0 entity.Window, _a1 error) *MockCompositor_ActiveWindow_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCompositor_ActiveWindow_Call) RunAndReturn(run func(context.Context) (entity.Window, error)) *MockCompositor_ActiveWindow_Call {
	_c.Call.Return(run)
	return _c
}

// ActiveWorkspace provides a mock function with given fields: ctx
func (_m *MockCompositor) ActiveWorkspace(ctx context.Context) (entity.Workspace, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ActiveWorkspace")
	}

	var r0 entity.Workspace
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (entity.Workspace, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) entity.Workspace); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(entity.Workspace)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCompositor_ActiveWorkspace_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ActiveWorkspace'
type MockCompositor_ActiveWorkspace_Call struct {
	*mock.Call
}

// ActiveWorkspace is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCompositor_Expecter) ActiveWorkspace(ctx interface{}) *MockCompositor_ActiveWorkspace_Call {
	return &MockCompositor_ActiveWorkspace_Call{Call: _e.mock.On("ActiveWorkspace", ctx)}
}

func (_c *MockCompositor_ActiveWorkspace_Call) Run(run func(ctx context.Context)) *MockCompositor_ActiveWorkspace_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockCompositor_ActiveWorkspace_Call) Return(_a0 entity.Workspace, _a1 error) *MockCompositor_ActiveWorkspace_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCompositor_ActiveWorkspace_Call) RunAndReturn(run func(context.Context) (entity.Workspace, error)) *MockCompositor_ActiveWorkspace_Call {
	_c.Call.Return(run)
	return _c
}

// Clients provides a mock function with given fields: ctx
func (_m *MockCompositor) Clients(ctx context.Context) ([]entity.Window, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Clients")
	}

	var r0 []entity.Window
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]entity.Window, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Window); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.Window)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCompositor_Clients_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Clients'
type MockCompositor_Clients_Call struct {
	*mock.Call
}

// Clients is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCompositor_Expecter) Clients(ctx interface{}) *MockCompositor_Clients_Call {
	return &MockCompositor_Clients_Call{Call: _e.mock.On("Clients", ctx)}
}

func (_c *MockCompositor_Clients_Call) Run(run func(ctx context.Context)) *MockCompositor_Clients_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockCompositor_Clients_Call) Return(_a0 []entity.Window, _a1 error) *MockCompositor_Clients_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCompositor_Clients_Call) RunAndReturn(run func(context.Context) ([]entity.Window, error)) *MockCompositor_Clients_Call {
	_c.Call.Return(run)
	return _c
}

// Dispatch provides a mock function with given fields: ctx, command
func (_m *MockCompositor) Dispatch(ctx context.Context, command string) error {
	ret := _m.Called(ctx, command)

	if len(ret) == 0 {
		panic("no return value specified for Dispatch")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, command)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCompositor_Dispatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Dispatch'
type MockCompositor_Dispatch_Call struct {
	*mock.Call
}

// Dispatch is a helper method to define mock.On call
//   - ctx context.Context
//   - command string
func (_e *MockCompositor_Expecter) Dispatch(ctx interface{}, command interface{}) *MockCompositor_Dispatch_Call {
	return &MockCompositor_Dispatch_Call{Call: _e.mock.On("Dispatch", ctx, command)}
}

func (_c *MockCompositor_Dispatch_Call) Run(run func(ctx context.Context, command string)) *MockCompositor_Dispatch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCompositor_Dispatch_Call) Return(_a0 error) *MockCompositor_Dispatch_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCompositor_Dispatch_Call) RunAndReturn(run func(context.Context, string) error) *MockCompositor_Dispatch_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCompositor creates a new instance of MockCompositor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCompositor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompositor {
	mock := &MockCompositor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
