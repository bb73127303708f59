package output

import (
	"encoding/json"
	"io"

	"github.com/temirov/srctree/internal/commands"
)

const (
	indentPrefix = ""
	indentSpacer = "  "
)

type jsonStreamRenderer struct {
	stdout  io.Writer
	builder treeNodeBuilder
}

// NewJSONStreamRenderer returns a renderer that writes the whole tree as one indented JSON document on Flush.
func NewJSONStreamRenderer(stdout io.Writer) StreamRenderer {
	return &jsonStreamRenderer{stdout: stdout}
}

func (renderer *jsonStreamRenderer) Handle(event commands.TreeEvent) error {
	renderer.builder.handle(event)
	return nil
}

func (renderer *jsonStreamRenderer) Flush() error {
	if renderer.builder.root == nil {
		return nil
	}
	encoded, encodeError := json.MarshalIndent(renderer.builder.root, indentPrefix, indentSpacer)
	if encodeError != nil {
		return encodeError
	}
	encoded = append(encoded, '\n')
	_, writeError := renderer.stdout.Write(encoded)
	return writeError
}
