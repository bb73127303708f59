package output

import (
	"encoding/xml"
	"io"

	"github.com/temirov/srctree/internal/commands"
)

type xmlStreamRenderer struct {
	stdout  io.Writer
	builder treeNodeBuilder
}

// NewXMLStreamRenderer returns a renderer that writes the whole tree as one XML document on Flush.
func NewXMLStreamRenderer(stdout io.Writer) StreamRenderer {
	return &xmlStreamRenderer{stdout: stdout}
}

func (renderer *xmlStreamRenderer) Handle(event commands.TreeEvent) error {
	renderer.builder.handle(event)
	return nil
}

func (renderer *xmlStreamRenderer) Flush() error {
	if renderer.builder.root == nil {
		return nil
	}
	encoded, encodeError := xml.MarshalIndent(renderer.builder.root, indentPrefix, indentSpacer)
	if encodeError != nil {
		return encodeError
	}
	if _, err := io.WriteString(renderer.stdout, xml.Header); err != nil {
		return err
	}
	encoded = append(encoded, '\n')
	_, writeError := renderer.stdout.Write(encoded)
	return writeError
}
