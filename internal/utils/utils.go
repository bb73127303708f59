// Package utils contains general helper functions used across the srctree tool.
package utils

import (
	"path/filepath"
	"strings"
)

// Ignore and configuration file constants used across the project.
const (
	// IgnoreFileName is the name of the per-root exclusion pattern file.
	IgnoreFileName = ".srctreeignore"
	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".srctree"
	// HiddenEntryPrefix marks directory entries that are skipped unless hidden entries are requested.
	HiddenEntryPrefix = "."
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the relative path from root to fullPath in forward-slash form.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return NormalizeSeparators(cleanPath)
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)
	if absolutePath, absErr := filepath.Abs(cleanPath); absErr == nil {
		cleanPath = absolutePath
	}

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return NormalizeSeparators(cleanPath)
	}
	return NormalizeSeparators(relativePath)
}

// NormalizeSeparators converts both platform and Windows separators to forward slashes.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", pathSegmentSeparator)
}

// BaseName returns the last forward-slash segment of a normalized path.
func BaseName(path string) string {
	normalized := strings.TrimSuffix(NormalizeSeparators(path), pathSegmentSeparator)
	if separatorIndex := strings.LastIndex(normalized, pathSegmentSeparator); separatorIndex >= 0 {
		return normalized[separatorIndex+1:]
	}
	return normalized
}

// IsHiddenName reports whether a directory entry name denotes a hidden entry.
func IsHiddenName(entryName string) bool {
	return strings.HasPrefix(entryName, HiddenEntryPrefix)
}
