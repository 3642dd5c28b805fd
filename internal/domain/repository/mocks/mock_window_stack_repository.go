// Hand-maintained in the mockery expecter layout described by .mockery.yaml.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockWindowStackRepository is a mock type for the WindowStackRepository type
type MockWindowStackRepository struct {
	mock.Mock
}

type MockWindowStackRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWindowStackRepository) EXPECT() *MockWindowStackRepository_Expecter {
	return &MockWindowStackRepository_Expecter{mock: &_m.Mock}
}

// List provides a mock function with given fields: ctx
func (_m *MockWindowStackRepository) List(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockWindowStackRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockWindowStackRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockWindowStackRepository_Expecter) List(ctx interface{}) *MockWindowStackRepository_List_Call {
	return &MockWindowStackRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockWindowStackRepository_List_Call) Run(run func(ctx context.Context)) *MockWindowStackRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockWindowStackRepository_List_Call) Return(_a0 []string, _a1 error) *MockWindowStackRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockWindowStackRepository_List_Call) RunAndReturn(run func(context.Context) ([]string, error)) *MockWindowStackRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Pop provides a mock function with given fields: ctx
func (_m *MockWindowStackRepository) Pop(ctx context.Context) (string, bool, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Pop")
	}

	var r0 string
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context) (string, bool, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) string); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context) bool); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context) error); ok {
		r2 = rf(ctx)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockWindowStackRepository_Pop_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Pop'
type MockWindowStackRepository_Pop_Call struct {
	*mock.Call
}

// Pop is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockWindowStackRepository_Expecter) Pop(ctx interface{}) *MockWindowStackRepository_Pop_Call {
	return &MockWindowStackRepository_Pop_Call{Call: _e.mock.On("Pop", ctx)}
}

func (_c *MockWindowStackRepository_Pop_Call) Run(run func(ctx context.Context)) *MockWindowStackRepository_Pop_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockWindowStackRepository_Pop_Call) Return(address string, ok bool, err error) *MockWindowStackRepository_Pop_Call {
	_c.Call.Return(address, ok, err)
	return _c
}

func (_c *MockWindowStackRepository_Pop_Call) RunAndReturn(run func(context.Context) (string, bool, error)) *MockWindowStackRepository_Pop_Call {
	_c.Call.Return(run)
	return _c
}

// Push provides a mock function with given fields: ctx, address
func (_m *MockWindowStackRepository) Push(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for Push")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, address)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWindowStackRepository_Push_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Push'
type MockWindowStackRepository_Push_Call struct {
	*mock.Call
}

// Push is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
func (_e *MockWindowStackRepository_Expecter) Push(ctx interface{}, address interface{}) *MockWindowStackRepository_Push_Call {
	return &MockWindowStackRepository_Push_Call{Call: _e.mock.On("Push", ctx, address)}
}

func (_c *MockWindowStackRepository_Push_Call) Run(run func(ctx context.Context, address string)) *MockWindowStackRepository_Push_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockWindowStackRepository_Push_Call) Return(_a0 error) *MockWindowStackRepository_Push_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWindowStackRepository_Push_Call) RunAndReturn(run func(context.Context, string) error) *MockWindowStackRepository_Push_Call {
	_c.Call.Return(run)
	return _c
}

// Remove provides a mock function with given fields: ctx, address
func (_m *MockWindowStackRepository) Remove(ctx context.Context, address string) error {
	ret := _m.Called(ctx, address)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, address)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWindowStackRepository_Remove_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Remove'
type MockWindowStackRepository_Remove_Call struct {
	*mock.Call
}

// Remove is a helper method to define mock.On call
//   - ctx context.Context
//   - address string
func (_e *MockWindowStackRepository_Expecter) Remove(ctx interface{}, address interface{}) *MockWindowStackRepository_Remove_Call {
	return &MockWindowStackRepository_Remove_Call{Call: _e.mock.On("Remove", ctx, address)}
}

func (_c *MockWindowStackRepository_Remove_Call) Run(run func(ctx context.Context, address string)) *MockWindowStackRepository_Remove_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockWindowStackRepository_Remove_Call) Return(_a0 error) *MockWindowStackRepository_Remove_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWindowStackRepository_Remove_Call) RunAndReturn(run func(context.Context, string) error) *MockWindowStackRepository_Remove_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockWindowStackRepository creates a new instance of MockWindowStackRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWindowStackRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWindowStackRepository {
	mock := &MockWindowStackRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
