package sorting

import "strings"

// PriorityGroup is the coarse ordinal bucket a file name falls into.
type PriorityGroup int

const (
	GroupCMakeLists PriorityGroup = iota
	GroupMakefile
	GroupHeader
	GroupCSource
	GroupCPPSource
	GroupOther
)

const (
	cmakeListsFileName = "CMakeLists.txt"
	makefileFileName   = "Makefile"
)

var extensionGroups = map[string]PriorityGroup{
	".h":   GroupHeader,
	".hpp": GroupHeader,
	".c":   GroupCSource,
	".cpp": GroupCPPSource,
}

// Priority is the classification of a file name.
// Extension is only set for GroupOther, where it orders files before the natural key does.
type Priority struct {
	Group     PriorityGroup
	Extension string
}

// Classify maps a file name to its priority. Exact names are matched case-sensitively
// and before extensions; extensions are matched case-insensitively.
func Classify(fileName string) Priority {
	switch fileName {
	case cmakeListsFileName:
		return Priority{Group: GroupCMakeLists}
	case makefileFileName:
		return Priority{Group: GroupMakefile}
	}
	extension := strings.ToLower(Extension(fileName))
	if group, known := extensionGroups[extension]; known {
		return Priority{Group: group}
	}
	return Priority{Group: GroupOther, Extension: extension}
}

// Compare orders priorities by group, then by extension.
func (priority Priority) Compare(other Priority) int {
	if priority.Group != other.Group {
		if priority.Group < other.Group {
			return -1
		}
		return 1
	}
	return strings.Compare(priority.Extension, other.Extension)
}

// Extension returns the suffix of fileName starting at its last dot.
// Leading dots do not start an extension, so ".bashrc" and "..." have none.
func Extension(fileName string) string {
	dotIndex := strings.LastIndexByte(fileName, '.')
	if dotIndex <= 0 {
		return ""
	}
	if strings.TrimLeft(fileName[:dotIndex], ".") == "" {
		return ""
	}
	return fileName[dotIndex:]
}
