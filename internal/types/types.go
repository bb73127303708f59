// Package types defines every cross‑package data structure used by the srctree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	CommandInit = "init"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	InputPath    string
	AbsolutePath string
	IsDir        bool
}

// TreeOutputNode represents a node of a rendered directory tree.
type TreeOutputNode struct {
	XMLName  xml.Name          `json:"-" xml:"node"`
	Path     string            `json:"path" xml:"path"`
	Name     string            `json:"name" xml:"name"`
	Type     string            `json:"type" xml:"type"`
	Error    string            `json:"error,omitempty" xml:"error,omitempty"`
	Children []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}
