package output

import (
	"fmt"
	"path/filepath"

	"github.com/temirov/srctree/internal/types"
)

const (
	currentDirectoryInput  = "."
	currentDirectoryHeader = "Tree structure of current directory (%s):"
	namedDirectoryHeader   = "Tree structure of %s:"
)

// FormatHeader returns the line printed above a raw tree.
// The current directory is announced as such; any other path by its base name.
func FormatHeader(path types.ValidatedPath) string {
	name := filepath.Base(path.AbsolutePath)
	if path.InputPath == currentDirectoryInput {
		return fmt.Sprintf(currentDirectoryHeader, name)
	}
	return fmt.Sprintf(namedDirectoryHeader, name)
}
