package output

import (
	"github.com/temirov/srctree/internal/commands"
	"github.com/temirov/srctree/internal/types"
)

// treeNodeBuilder assembles traversal events into a TreeOutputNode hierarchy.
type treeNodeBuilder struct {
	root  *types.TreeOutputNode
	stack []*types.TreeOutputNode
}

func (builder *treeNodeBuilder) handle(event commands.TreeEvent) {
	switch event.Kind {
	case commands.TreeEventEnterDir:
		if event.Directory == nil {
			return
		}
		node := &types.TreeOutputNode{
			Path: event.Directory.Path,
			Name: event.Directory.Name,
			Type: types.NodeTypeDirectory,
		}
		builder.attach(node)
		builder.stack = append(builder.stack, node)
	case commands.TreeEventFile:
		if event.File == nil {
			return
		}
		builder.attach(&types.TreeOutputNode{
			Path: event.File.Path,
			Name: event.File.Name,
			Type: types.NodeTypeFile,
		})
	case commands.TreeEventDirError:
		if len(builder.stack) > 0 {
			builder.stack[len(builder.stack)-1].Error = directoryErrorMessage(event.Error)
		}
	case commands.TreeEventLeaveDir:
		if len(builder.stack) > 0 {
			builder.stack = builder.stack[:len(builder.stack)-1]
		}
	}
}

func (builder *treeNodeBuilder) attach(node *types.TreeOutputNode) {
	if len(builder.stack) == 0 {
		if builder.root == nil {
			builder.root = node
		}
		return
	}
	parent := builder.stack[len(builder.stack)-1]
	parent.Children = append(parent.Children, node)
}
