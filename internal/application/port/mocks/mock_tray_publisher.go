// Hand-maintained in the mockery expecter layout described by .mockery.yaml.

package mocks

import (
	context "context"

	entity "github.com/bnema/hyprminimizer/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"

	port "github.com/bnema/hyprminimizer/internal/application/port"
)

// MockTrayPublisher is a mock type for the TrayPublisher type
type MockTrayPublisher struct {
	mock.Mock
}

type MockTrayPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTrayPublisher) EXPECT() *MockTrayPublisher_Expecter {
	return &MockTrayPublisher_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: ctx, window, actions
func (_m *MockTrayPublisher) Publish(ctx context.Context, window entity.Window, actions port.TrayActions) (port.TrayRegistration, error) {
	ret := _m.Called(ctx, window, actions)

	if len(ret) == 0 {
		panic("no return value specified for Publish")
	}

	var r0 port.TrayRegistration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Window, port.TrayActions) (port.TrayRegistration, error)); ok {
		return rf(ctx, window, actions)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Window, port.TrayActions) port.TrayRegistration); ok {
		r0 = rf(ctx, window, actions)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(port.TrayRegistration)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Window, port.TrayActions) error); ok {
		r1 = rf(ctx, window, actions)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTrayPublisher_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'
type MockTrayPublisher_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
//   - ctx context.Context
//   - window entity.Window
//   - actions port.TrayActions
func (_e *MockTrayPublisher_Expecter) Publish(ctx interface{}, window interface{}, actions interface{}) *MockTrayPublisher_Publish_Call {
	return &MockTrayPublisher_Publish_Call{Call: _e.mock.On("Publish", ctx, window, actions)}
}

func (_c *MockTrayPublisher_Publish_Call) Run(run func(ctx context.Context, window entity.Window, actions port.TrayActions)) *MockTrayPublisher_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Window), args[2].(port.TrayActions))
	})
	return _c
}

func (_c *MockTrayPublisher_Publish_Call) Return(_a0 port.TrayRegistration, _a1 error) *MockTrayPublisher_Publish_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTrayPublisher_Publish_Call) RunAndReturn(run func(context.Context, entity.Window, port.TrayActions) (port.TrayRegistration, error)) *MockTrayPublisher_Publish_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTrayPublisher creates a new instance of MockTrayPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTrayPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTrayPublisher {
	mock := &MockTrayPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
