package entity

import "errors"

var (
	// ErrStackIO marks failures reading or writing the persisted window stack.
	ErrStackIO = errors.New("window stack i/o")
	// ErrCompositor marks failed compositor queries or dispatches.
	ErrCompositor = errors.New("compositor")
	// ErrIPCSetup marks failures building or registering the tray service.
	ErrIPCSetup = errors.New("tray ipc setup")
	// ErrWindowNotFound is returned when no window matches an address.
	ErrWindowNotFound = errors.New("window not found")
	// ErrInvalidRestoreTarget is returned for unknown restore targets.
	ErrInvalidRestoreTarget = errors.New("invalid restore target")
)
