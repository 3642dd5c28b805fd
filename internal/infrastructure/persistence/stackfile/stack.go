// Package stackfile stores the minimized-window stack as a newline-delimited text file.
package stackfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
	"github.com/bnema/hyprminimizer/internal/domain/repository"
	"github.com/bnema/hyprminimizer/internal/logging"
)

const filePerm = 0o600

// Store implements repository.WindowStackRepository on a single file.
// Every operation holds an flock on the file for its whole read-modify-write,
// so concurrent instances serialize instead of losing updates.
type Store struct {
	path string
}

var _ repository.WindowStackRepository = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Push(ctx context.Context, address string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return s.ioError("open for append", err)
	}
	defer closeUnlocked(f)

	if err := lock(f, unix.LOCK_EX); err != nil {
		return s.ioError("lock", err)
	}
	if _, err := fmt.Fprintln(f, address); err != nil {
		return s.ioError("append", err)
	}

	logging.FromContext(ctx).Debug().Str("address", address).Str("path", s.path).Msg("pushed window")
	return nil
}

func (s *Store) Pop(ctx context.Context) (string, bool, error) {
	var popped string
	var ok bool
	err := s.rewrite(func(entries []string) []string {
		if len(entries) == 0 {
			return nil
		}
		popped, ok = entries[len(entries)-1], true
		return entries[:len(entries)-1]
	})
	if err != nil {
		return "", false, err
	}
	if ok {
		logging.FromContext(ctx).Debug().Str("address", popped).Msg("popped window")
	}
	return popped, ok, nil
}

// Remove drops every entry equal to address. Duplicates collapse.
func (s *Store) Remove(ctx context.Context, address string) error {
	removed := 0
	err := s.rewrite(func(entries []string) []string {
		kept := entries[:0]
		for _, e := range entries {
			if e == address {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("address", address).Int("removed", removed).Msg("removed window")
	return nil
}

func (s *Store) List(_ context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, s.ioError("open for reading", err)
	}
	defer closeUnlocked(f)

	if err := lock(f, unix.LOCK_SH); err != nil {
		return nil, s.ioError("lock", err)
	}
	entries, err := readEntries(f)
	if err != nil {
		return nil, s.ioError("read", err)
	}
	return entries, nil
}

// rewrite locks the file, hands its entries to fn and writes back what fn
// returns. A nil result leaves the file untouched. A missing file is a no-op.
func (s *Store) rewrite(fn func(entries []string) []string) error {
	f, err := os.OpenFile(s.path, os.O_RDWR, filePerm)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return s.ioError("open for rewrite", err)
	}
	defer closeUnlocked(f)

	if err := lock(f, unix.LOCK_EX); err != nil {
		return s.ioError("lock", err)
	}

	entries, err := readEntries(f)
	if err != nil {
		return s.ioError("read", err)
	}
	next := fn(entries)
	if next == nil {
		return nil
	}

	// Truncate in place: replacing the file would drop the lock other processes wait on.
	if err := f.Truncate(0); err != nil {
		return s.ioError("truncate", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return s.ioError("seek", err)
	}
	w := bufio.NewWriter(f)
	for _, e := range next {
		if _, err := w.WriteString(e + "\n"); err != nil {
			return s.ioError("write", err)
		}
	}
	if err := w.Flush(); err != nil {
		return s.ioError("write", err)
	}
	return nil
}

func (s *Store) ioError(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", entity.ErrStackIO, op, s.path, err)
}

func readEntries(r io.Reader) ([]string, error) {
	entries := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, scanner.Err()
}

func lock(f *os.File, how int) error {
	for {
		err := unix.Flock(int(f.Fd()), how)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func closeUnlocked(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	_ = f.Close()
}
