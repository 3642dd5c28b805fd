package repository

import "context"

// WindowStackRepository persists the LIFO list of minimized window addresses.
// Entries are kept in insertion order; the last entry is the top of the stack.
// Duplicates are permitted.
type WindowStackRepository interface {
	// Push appends an address on top of the stack.
	Push(ctx context.Context, address string) error

	// Pop removes and returns the top entry. ok is false when the stack is
	// empty or was never created.
	Pop(ctx context.Context) (address string, ok bool, err error)

	// Remove deletes every entry equal to address, keeping the order of the others.
	Remove(ctx context.Context, address string) error

	// List returns all entries from bottom to top without modifying the stack.
	List(ctx context.Context) ([]string, error)
}
