// Hand-maintained in the mockery expecter layout described by .mockery.yaml.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockLauncher is a mock type for the Launcher type
type MockLauncher struct {
	mock.Mock
}

type MockLauncher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLauncher) EXPECT() *MockLauncher_Expecter {
	return &MockLauncher_Expecter{mock: &_m.Mock}
}

// Select provides a mock function with given fields: ctx, choices
func (_m *MockLauncher) Select(ctx context.Context, choices []string) (string, error) {
	ret := _m.Called(ctx, choices)

	if len(ret) == 0 {
		panic("no return value specified for Select")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []string) (string, error)); ok {
		return rf(ctx, choices)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string) string); ok {
		r0 = rf(ctx, choices)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, []string) error); ok {
		r1 = rf(ctx, choices)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLauncher_Select_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Select'
type MockLauncher_Select_Call struct {
	*mock.Call
}

// Select is a helper method to define mock.On call
//   - ctx context.Context
//   - choices []string
func (_e *MockLauncher_Expecter) Select(ctx interface{}, choices interface{}) *MockLauncher_Select_Call {
	return &MockLauncher_Select_Call{Call: _e.mock.On("Select", ctx, choices)}
}

func (_c *MockLauncher_Select_Call) Run(run func(ctx context.Context, choices []string)) *MockLauncher_Select_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *MockLauncher_Select_Call) Return(_a0 string, _a1 error) *MockLauncher_Select_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLauncher_Select_Call) RunAndReturn(run func(context.Context, []string) (string, error)) *MockLauncher_Select_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLauncher creates a new instance of MockLauncher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLauncher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLauncher {
	mock := &MockLauncher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
