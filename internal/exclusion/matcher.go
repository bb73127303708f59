package exclusion

import (
	"path/filepath"
	"strings"

	"github.com/temirov/srctree/internal/utils"
)

// Matcher evaluates paths against an ordered, pre-parsed set of exclusion patterns.
// The zero value and a nil *Matcher exclude nothing.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher parses every non-blank pattern once. Duplicates are dropped, first occurrence wins.
func NewMatcher(sources []string) *Matcher {
	trimmed := make([]string, 0, len(sources))
	for _, source := range sources {
		if value := strings.TrimSpace(source); value != "" {
			trimmed = append(trimmed, value)
		}
	}
	unique := utils.DeduplicatePatterns(trimmed)
	patterns := make([]Pattern, 0, len(unique))
	for _, source := range unique {
		patterns = append(patterns, ParsePattern(source))
	}
	return &Matcher{patterns: patterns}
}

// Patterns returns a copy of the parsed patterns in evaluation order.
func (matcher *Matcher) Patterns() []Pattern {
	if matcher == nil {
		return nil
	}
	return append([]Pattern(nil), matcher.patterns...)
}

// Empty reports whether the matcher holds no patterns.
func (matcher *Matcher) Empty() bool {
	return matcher == nil || len(matcher.patterns) == 0
}

// IsExcluded reports whether any pattern matches path. A relative path is taken as relative to root.
// The root itself is never excluded.
func (matcher *Matcher) IsExcluded(path, root string) bool {
	if matcher.Empty() {
		return false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	relativePath := utils.RelativePathOrSelf(path, root)
	if relativePath == "." {
		return false
	}
	return matcher.MatchRelative(relativePath)
}

// MatchRelative evaluates an already root-relative forward-slash path.
func (matcher *Matcher) MatchRelative(relativePath string) bool {
	if matcher.Empty() {
		return false
	}
	baseName := utils.BaseName(relativePath)
	for _, pattern := range matcher.patterns {
		if pattern.Matches(relativePath, baseName) {
			return true
		}
	}
	return false
}
