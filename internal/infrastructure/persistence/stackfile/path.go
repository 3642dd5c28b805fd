package stackfile

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
)

// FilePrefix is the stack file name without the user suffix.
const FilePrefix = "hypr-minimizer-stack-"

// ErrNoUser is returned when the invoking user cannot be determined.
var ErrNoUser = errors.New("cannot determine current user: $USER is unset and the account lookup failed")

// DefaultPath returns <baseDir>/hypr-minimizer-stack-<user>.
func DefaultPath(baseDir string) (string, error) {
	name, err := currentUser()
	if err != nil {
		return "", err
	}
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return filepath.Join(baseDir, FilePrefix+name), nil
}

func currentUser() (string, error) {
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	return "", ErrNoUser
}
