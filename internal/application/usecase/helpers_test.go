package usecase_test

import (
	"context"
	"slices"
	"sync"

	"github.com/stretchr/testify/mock"

	portmocks "github.com/bnema/hyprminimizer/internal/application/port/mocks"
	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// dispatchRecorder collects dispatched commands in order.
type dispatchRecorder struct {
	mu       sync.Mutex
	commands []string
	fail     map[string]error
}

func (r *dispatchRecorder) dispatch(_ context.Context, command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, command)
	return r.fail[command]
}

func (r *dispatchRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

func recordDispatches(comp *portmocks.MockCompositor) *dispatchRecorder {
	rec := &dispatchRecorder{fail: map[string]error{}}
	comp.EXPECT().Dispatch(mock.Anything, mock.Anything).RunAndReturn(rec.dispatch).Maybe()
	return rec
}

// memStack is an in-memory WindowStackRepository.
type memStack struct {
	mu        sync.Mutex
	entries   []string
	pushErr   error
	removeErr error
}

func (s *memStack) Push(_ context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushErr != nil {
		return s.pushErr
	}
	s.entries = append(s.entries, address)
	return nil
}

func (s *memStack) Pop(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return "", false, nil
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return last, true, nil
}

func (s *memStack) Remove(_ context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return s.removeErr
	}
	s.entries = slices.DeleteFunc(s.entries, func(e string) bool { return e == address })
	return nil
}

func (s *memStack) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries), nil
}

func (s *memStack) snapshot() []string {
	entries, _ := s.List(context.Background())
	return entries
}

// watcherFunc adapts a function to port.WindowStateWatcher.
type watcherFunc func(ctx context.Context, address string) (entity.WindowStateChange, error)

func (f watcherFunc) Watch(ctx context.Context, address string) (entity.WindowStateChange, error) {
	return f(ctx, address)
}

// blockingWatcher never reports a change on its own.
var blockingWatcher = watcherFunc(func(ctx context.Context, _ string) (entity.WindowStateChange, error) {
	<-ctx.Done()
	return "", ctx.Err()
})
