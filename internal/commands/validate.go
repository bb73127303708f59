package commands

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/temirov/srctree/internal/types"
)

// ValidateRoot resolves inputPath to a clean absolute directory path.
// A missing path or a non-directory yields an *InvalidRootPathError.
func ValidateRoot(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, &InvalidRootPathError{Path: inputPath, Err: absolutePathError}
	}
	cleanPath := filepath.Clean(absolutePath)

	info, statError := os.Stat(cleanPath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return types.ValidatedPath{}, &InvalidRootPathError{Path: inputPath, Reason: reasonDoesNotExist, Err: statError}
		}
		return types.ValidatedPath{}, &InvalidRootPathError{Path: inputPath, Err: statError}
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, &InvalidRootPathError{Path: inputPath, Reason: reasonNotADirectory}
	}

	return types.ValidatedPath{InputPath: inputPath, AbsolutePath: cleanPath, IsDir: true}, nil
}
