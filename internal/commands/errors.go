package commands

import (
	"errors"
	"fmt"
)

// ErrInvalidRootPath is matched by every InvalidRootPathError.
var ErrInvalidRootPath = errors.New("invalid root path")

const (
	reasonDoesNotExist   = "does not exist"
	reasonNotADirectory  = "is not a directory"
	invalidRootFormat    = "%s %s"
	unreadableDirFormat  = "reading directory %s: %v"
	inspectRootErrFormat = "inspecting %s: %v"
)

// InvalidRootPathError reports a start path that is missing or is not a directory.
// Nothing is rendered when it is returned.
type InvalidRootPathError struct {
	Path   string
	Reason string
	Err    error
}

func (err *InvalidRootPathError) Error() string {
	if err.Reason == "" && err.Err != nil {
		return fmt.Sprintf(inspectRootErrFormat, err.Path, err.Err)
	}
	return fmt.Sprintf(invalidRootFormat, err.Path, err.Reason)
}

// Is makes errors.Is(err, ErrInvalidRootPath) succeed.
func (err *InvalidRootPathError) Is(target error) bool {
	return target == ErrInvalidRootPath
}

func (err *InvalidRootPathError) Unwrap() error {
	return err.Err
}

// DirectoryUnreadableError reports a directory whose listing failed during traversal.
// It is recovered locally: the walk reports it in place and continues with the siblings.
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (err *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf(unreadableDirFormat, err.Path, err.Err)
}

func (err *DirectoryUnreadableError) Unwrap() error {
	return err.Err
}
