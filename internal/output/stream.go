// Package output renders tree traversal events as raw text, JSON or XML.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/temirov/srctree/internal/commands"
	"github.com/temirov/srctree/internal/types"
	"github.com/temirov/srctree/internal/utils"
)

// StreamRenderer consumes traversal events in order and writes the rendered tree.
// Flush must be called once after the last event.
type StreamRenderer interface {
	Handle(event commands.TreeEvent) error
	Flush() error
}

const (
	permissionDeniedMessage = "Permission denied"
	unsupportedFormatFormat = "unsupported format %q"
)

// NewStreamRenderer returns the renderer for format writing to stdout.
// The header is only written by the raw renderer.
func NewStreamRenderer(format string, stdout io.Writer, header string) (StreamRenderer, error) {
	switch format {
	case types.FormatRaw:
		return NewRawStreamRenderer(stdout, header), nil
	case types.FormatJSON:
		return NewJSONStreamRenderer(stdout), nil
	case types.FormatXML:
		return NewXMLStreamRenderer(stdout), nil
	default:
		return nil, fmt.Errorf(unsupportedFormatFormat, format)
	}
}

// directoryErrorMessage returns the text shown in place of an unreadable directory's children.
func directoryErrorMessage(event *commands.TreeErrorEvent) string {
	if event == nil || event.Err == nil {
		return ""
	}
	if errors.Is(event.Err, fs.ErrPermission) {
		return permissionDeniedMessage
	}
	if event.Err.Err != nil {
		return event.Err.Err.Error()
	}
	return event.Err.Error()
}

// inlineErrorLine formats a directory error the way it appears inside the raw tree.
func inlineErrorLine(event *commands.TreeErrorEvent) string {
	return fmt.Sprintf(utils.ErrorLogFormat, directoryErrorMessage(event))
}
