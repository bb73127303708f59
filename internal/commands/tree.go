// Package commands contains the traversal logic behind the tree command.
package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/temirov/srctree/internal/exclusion"
	"github.com/temirov/srctree/internal/sorting"
	"github.com/temirov/srctree/internal/utils"
)

// TreeEventKind identifies what a TreeEvent describes.
type TreeEventKind int

const (
	TreeEventEnterDir TreeEventKind = iota
	TreeEventFile
	TreeEventDirError
	TreeEventLeaveDir
)

// TreeEntryEvent describes a directory or file at its position in the tree.
type TreeEntryEvent struct {
	Path         string
	RelativePath string
	Name         string
	Depth        int
	IsLast       bool
}

// TreeErrorEvent describes a directory that could not be listed.
// Depth is the depth its children would have had.
type TreeErrorEvent struct {
	Path  string
	Depth int
	Err   *DirectoryUnreadableError
}

// TreeEvent is a single step of a depth-first traversal.
// Directory is set for enter and leave events, File for files and Error for listing failures.
type TreeEvent struct {
	Kind      TreeEventKind
	Directory *TreeEntryEvent
	File      *TreeEntryEvent
	Error     *TreeErrorEvent
}

// TreeOptions configures a traversal. Root must be an absolute directory path,
// usually obtained from ValidateRoot.
type TreeOptions struct {
	Root          string
	Matcher       *exclusion.Matcher
	IncludeHidden bool
	Warn          func(message string)
}

const symlinkCycleFormat = "not descending into %s: it links back to %s"

type treeWalker struct {
	options       TreeOptions
	handler       func(TreeEvent) error
	readDirectory func(string) ([]os.DirEntry, error)
	// ancestors holds the resolved paths of the directories currently being walked.
	ancestors map[string]struct{}
}

// StreamTree walks options.Root depth-first and reports every visible entry to handler.
// At each level files come before directories, both in sorting.SortEntries order, and the last
// entry of the level is flagged IsLast. The root is reported as the last entry of its own level.
// Unreadable directories produce one TreeEventDirError and the walk continues.
// Symbolic links to directories are walked like directories, except that a link resolving to one
// of its own ancestors is reported as an empty directory.
// Only handler errors stop the walk.
func StreamTree(options TreeOptions, handler func(TreeEvent) error) error {
	return streamTree(options, handler, os.ReadDir)
}

func streamTree(options TreeOptions, handler func(TreeEvent) error, readDirectory func(string) ([]os.DirEntry, error)) error {
	if handler == nil {
		return fmt.Errorf("tree stream handler is nil")
	}
	if options.Root == "" {
		return fmt.Errorf("tree root path is empty")
	}
	if options.Warn == nil {
		options.Warn = func(string) {}
	}
	walker := treeWalker{
		options:       options,
		handler:       handler,
		readDirectory: readDirectory,
		ancestors:     map[string]struct{}{},
	}
	return walker.walkDirectory(options.Root, filepath.Base(options.Root), 0, true)
}

func (walker *treeWalker) walkDirectory(directoryPath string, name string, depth int, isLast bool) error {
	root := walker.options.Root
	if directoryPath != root && walker.options.Matcher.IsExcluded(directoryPath, root) {
		return nil
	}

	directoryEvent := TreeEntryEvent{
		Path:         directoryPath,
		RelativePath: utils.RelativePathOrSelf(directoryPath, root),
		Name:         name,
		Depth:        depth,
		IsLast:       isLast,
	}
	if err := walker.handler(TreeEvent{Kind: TreeEventEnterDir, Directory: &directoryEvent}); err != nil {
		return err
	}

	resolvedPath := resolveDirectory(directoryPath)
	if _, cycle := walker.ancestors[resolvedPath]; cycle {
		walker.options.Warn(fmt.Sprintf(symlinkCycleFormat, directoryPath, resolvedPath))
		return walker.handler(TreeEvent{Kind: TreeEventLeaveDir, Directory: &directoryEvent})
	}
	walker.ancestors[resolvedPath] = struct{}{}
	defer delete(walker.ancestors, resolvedPath)

	children, listError := walker.listChildren(directoryPath)
	if listError != nil {
		unreadable := &DirectoryUnreadableError{Path: directoryPath, Err: listError}
		walker.options.Warn(unreadable.Error())
		if err := walker.handler(TreeEvent{
			Kind:  TreeEventDirError,
			Error: &TreeErrorEvent{Path: directoryPath, Depth: depth + 1, Err: unreadable},
		}); err != nil {
			return err
		}
	}

	for childIndex, child := range children {
		childIsLast := childIndex == len(children)-1
		if child.IsDir() {
			if err := walker.walkDirectory(child.Path, child.Name, depth+1, childIsLast); err != nil {
				return err
			}
			continue
		}
		fileEvent := TreeEntryEvent{
			Path:         child.Path,
			RelativePath: utils.RelativePathOrSelf(child.Path, root),
			Name:         child.Name,
			Depth:        depth + 1,
			IsLast:       childIsLast,
		}
		if err := walker.handler(TreeEvent{Kind: TreeEventFile, File: &fileEvent}); err != nil {
			return err
		}
	}

	return walker.handler(TreeEvent{Kind: TreeEventLeaveDir, Directory: &directoryEvent})
}

// listChildren returns the visible, non-excluded children of directoryPath in render order.
// A symbolic link counts as a directory when its target is one; broken links are files.
func (walker *treeWalker) listChildren(directoryPath string) ([]sorting.Entry, error) {
	directoryEntries, readError := walker.readDirectory(directoryPath)
	if readError != nil {
		return nil, readError
	}

	candidates := make([]sorting.Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !walker.options.IncludeHidden && utils.IsHiddenName(entryName) {
			continue
		}
		childPath := filepath.Join(directoryPath, entryName)
		if walker.options.Matcher.IsExcluded(childPath, walker.options.Root) {
			continue
		}
		kind := sorting.KindFile
		if isDirectoryEntry(directoryEntry, childPath) {
			kind = sorting.KindDirectory
		}
		candidates = append(candidates, sorting.Entry{Name: entryName, Path: childPath, Kind: kind})
	}
	return sorting.SortEntries(candidates), nil
}

func isDirectoryEntry(directoryEntry os.DirEntry, path string) bool {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir()
	}
	info, statError := os.Stat(path)
	return statError == nil && info.IsDir()
}

// resolveDirectory returns path with every symbolic link evaluated, or path itself when that fails.
func resolveDirectory(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
