// Hand-maintained in the mockery expecter layout described by .mockery.yaml.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockTrayRegistration is a mock type for the TrayRegistration type
type MockTrayRegistration struct {
	mock.Mock
}

type MockTrayRegistration_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTrayRegistration) EXPECT() *MockTrayRegistration_Expecter {
	return &MockTrayRegistration_Expecter{mock: &_m.Mock}
}

// BusName provides a mock function with no fields
func (_m *MockTrayRegistration) BusName() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for BusName")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockTrayRegistration_BusName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BusName'
type MockTrayRegistration_BusName_Call struct {
	*mock.Call
}

// BusName is a helper method to define mock.On call
func (_e *MockTrayRegistration_Expecter) BusName() *MockTrayRegistration_BusName_Call {
	return &MockTrayRegistration_BusName_Call{Call: _e.mock.On("BusName")}
}

func (_c *MockTrayRegistration_BusName_Call) Run(run func()) *MockTrayRegistration_BusName_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTrayRegistration_BusName_Call) Return(_a0 string) *MockTrayRegistration_BusName_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrayRegistration_BusName_Call) RunAndReturn(run func() string) *MockTrayRegistration_BusName_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with no fields
func (_m *MockTrayRegistration) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTrayRegistration_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockTrayRegistration_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockTrayRegistration_Expecter) Close() *MockTrayRegistration_Close_Call {
	return &MockTrayRegistration_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockTrayRegistration_Close_Call) Run(run func()) *MockTrayRegistration_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTrayRegistration_Close_Call) Return(_a0 error) *MockTrayRegistration_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrayRegistration_Close_Call) RunAndReturn(run func() error) *MockTrayRegistration_Close_Call {
	_c.Call.Return(run)
	return _c
}

// HostRestarts provides a mock function with given fields: ctx
func (_m *MockTrayRegistration) HostRestarts(ctx context.Context) (<-chan struct{}, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for HostRestarts")
	}

	var r0 <-chan struct{}
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (<-chan struct{}, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) <-chan struct{}); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(<-chan struct{})
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrayRegistration_HostRestarts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HostRestarts'
type MockTrayRegistration_HostRestarts_Call struct {
	*mock.Call
}

// HostRestarts is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockTrayRegistration_Expecter) HostRestarts(ctx interface{}) *MockTrayRegistration_HostRestarts_Call {
	return &MockTrayRegistration_HostRestarts_Call{Call: _e.mock.On("HostRestarts", ctx)}
}

func (_c *MockTrayRegistration_HostRestarts_Call) Run(run func(ctx context.Context)) *MockTrayRegistration_HostRestarts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockTrayRegistration_HostRestarts_Call) Return(_a0 <-chan struct{}, _a1 error) *MockTrayRegistration_HostRestarts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrayRegistration_HostRestarts_Call) RunAndReturn(run func(context.Context) (<-chan struct{}, error)) *MockTrayRegistration_HostRestarts_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx
func (_m *MockTrayRegistration) Register(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTrayRegistration_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockTrayRegistration_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockTrayRegistration_Expecter) Register(ctx interface{}) *MockTrayRegistration_Register_Call {
	return &MockTrayRegistration_Register_Call{Call: _e.mock.On("Register", ctx)}
}

func (_c *MockTrayRegistration_Register_Call) Run(run func(ctx context.Context)) *MockTrayRegistration_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockTrayRegistration_Register_Call) Return(_a0 error) *MockTrayRegistration_Register_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTrayRegistration_Register_Call) RunAndReturn(run func(context.Context) error) *MockTrayRegistration_Register_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTrayRegistration creates a new instance of MockTrayRegistration. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTrayRegistration(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTrayRegistration {
	mock := &MockTrayRegistration{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
