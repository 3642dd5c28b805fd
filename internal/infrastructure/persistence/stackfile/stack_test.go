package stackfile

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), FilePrefix+"tester"))
}

func TestStore_PushPopIsLIFO(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			s := newTestStore(t)
			pushed := make([]string, n)
			for i := range n {
				pushed[i] = "0x" + strconv.Itoa(i)
				require.NoError(t, s.Push(ctx, pushed[i]))
			}

			for i := n - 1; i >= 0; i-- {
				got, ok, err := s.Pop(ctx)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, pushed[i], got)
			}

			_, ok, err := s.Pop(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_PopEmptyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for range 3 {
		got, ok, err := s.Pop(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	}
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "pop must not create the file")

	require.NoError(t, s.Push(ctx, "0x1"))
	_, _, err = s.Pop(ctx)
	require.NoError(t, err)
	for range 2 {
		_, ok, err := s.Pop(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestStore_RemoveDropsAllMatchesAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, a := range []string{"0xA", "0xB", "0xA", "0xC", "0xA", "0xD"} {
		require.NoError(t, s.Push(ctx, a))
	}

	require.NoError(t, s.Remove(ctx, "0xA"))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xB", "0xC", "0xD"}, entries)
}

func TestStore_RemoveMatchesTrimmedLines(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("0xA  \n\n 0xB\n0xA\r\n"), filePerm))

	require.NoError(t, s.Remove(ctx, "0xA"))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xB"}, entries)
}

func TestStore_RemoveMissingFileIsNoop(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Remove(context.Background(), "0xA"))

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestStore_ListDoesNotModify(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, s.Push(ctx, "0x1"))
	require.NoError(t, s.Push(ctx, "0x2"))

	for range 2 {
		entries, err = s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"0x1", "0x2"}, entries)
	}
}

func TestStore_FileFormat(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Push(ctx, "0x1"))
	require.NoError(t, s.Push(ctx, "0x2"))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "0x1\n0x2\n", string(raw))
}

func TestStore_PushFailureIsStackIO(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", "stack"))

	err := s.Push(context.Background(), "0x1")
	require.ErrorIs(t, err, entity.ErrStackIO)
}

func TestStore_ConcurrentPushesAreNotLost(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), FilePrefix+"tester")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate Store values mimic separate processes sharing the file.
			assert.NoError(t, New(path).Push(ctx, "0x"+strconv.Itoa(i)))
		}()
	}
	wg.Wait()

	var popped sync.Map
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, ok, err := New(path).Pop(ctx)
			assert.NoError(t, err)
			assert.True(t, ok)
			_, dup := popped.LoadOrStore(addr, true)
			assert.False(t, dup, "address %s popped twice", addr)
		}()
	}
	wg.Wait()

	entries, err := New(path).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newTestStore(t)

	changes, err := s.Watch(ctx)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(s.Path()), "other"), []byte("x"), filePerm))
	require.NoError(t, s.Push(ctx, "0x1"))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change event for stack file")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("USER", "alice")

	p, err := DefaultPath("/run/user/1000")
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/hypr-minimizer-stack-alice", p)

	p, err = DefaultPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "hypr-minimizer-stack-alice"), p)
}

func TestDefaultPath_FallsBackToAccount(t *testing.T) {
	t.Setenv("USER", "")

	p, err := DefaultPath("/tmp")
	if err != nil {
		assert.ErrorIs(t, err, ErrNoUser)
		return
	}
	assert.Contains(t, p, "/tmp/"+FilePrefix)
	assert.NotEqual(t, "/tmp/"+FilePrefix, p)
}
