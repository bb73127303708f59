package output

import (
	"fmt"
	"io"

	"github.com/temirov/srctree/internal/commands"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

type rawStreamRenderer struct {
	stdout        io.Writer
	header        string
	headerWritten bool
	// prefixes holds the indentation inherited by the children of each open directory.
	prefixes []string
}

// NewRawStreamRenderer returns a renderer that writes each tree line as soon as its event arrives.
func NewRawStreamRenderer(stdout io.Writer, header string) StreamRenderer {
	return &rawStreamRenderer{stdout: stdout, header: header, prefixes: []string{""}}
}

func (renderer *rawStreamRenderer) Handle(event commands.TreeEvent) error {
	if err := renderer.writeHeader(); err != nil {
		return err
	}
	switch event.Kind {
	case commands.TreeEventEnterDir:
		if event.Directory == nil {
			return nil
		}
		linePrefix, childPrefix := treeNodeLinePrefix(renderer.currentPrefix(), event.Directory.IsLast)
		renderer.prefixes = append(renderer.prefixes, childPrefix)
		return renderer.writeLine(linePrefix + event.Directory.Name)
	case commands.TreeEventFile:
		if event.File == nil {
			return nil
		}
		linePrefix, _ := treeNodeLinePrefix(renderer.currentPrefix(), event.File.IsLast)
		return renderer.writeLine(linePrefix + event.File.Name)
	case commands.TreeEventDirError:
		return renderer.writeLine(renderer.currentPrefix() + inlineErrorLine(event.Error))
	case commands.TreeEventLeaveDir:
		if len(renderer.prefixes) > 1 {
			renderer.prefixes = renderer.prefixes[:len(renderer.prefixes)-1]
		}
	}
	return nil
}

func (renderer *rawStreamRenderer) Flush() error {
	return renderer.writeHeader()
}

func (renderer *rawStreamRenderer) writeHeader() error {
	if renderer.headerWritten || renderer.header == "" {
		renderer.headerWritten = true
		return nil
	}
	renderer.headerWritten = true
	return renderer.writeLine(renderer.header)
}

func (renderer *rawStreamRenderer) currentPrefix() string {
	return renderer.prefixes[len(renderer.prefixes)-1]
}

func (renderer *rawStreamRenderer) writeLine(line string) error {
	_, err := fmt.Fprintln(renderer.stdout, line)
	return err
}

// treeNodeLinePrefix returns the prefix of an entry's own line and the prefix inherited by its children.
func treeNodeLinePrefix(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}
