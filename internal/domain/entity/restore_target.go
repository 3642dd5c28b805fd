package entity

import (
	"fmt"
	"strings"
)

// RestoreTarget selects where a restored window is placed.
type RestoreTarget string

const (
	// RestoreTargetActive moves the window to the user's current workspace.
	RestoreTargetActive RestoreTarget = "active"
	// RestoreTargetOriginal leaves placement to the window's origin workspace.
	RestoreTargetOriginal RestoreTarget = "original"
)

// ParseRestoreTarget converts a config or flag value into a RestoreTarget.
func ParseRestoreTarget(value string) (RestoreTarget, error) {
	switch RestoreTarget(strings.ToLower(strings.TrimSpace(value))) {
	case RestoreTargetActive:
		return RestoreTargetActive, nil
	case RestoreTargetOriginal:
		return RestoreTargetOriginal, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidRestoreTarget, value, RestoreTargetActive, RestoreTargetOriginal)
	}
}
