// Package exclusion decides which paths are left out of a rendered tree.
//
// Three pattern grammars are recognised from their literal syntax:
//
//   - "/build" is anchored at the traversal root and matches that path and everything below it.
//   - "**.lock" contains "**", which matches any substring including separators; the pattern must
//     match a suffix of either the root-relative path or the entry name.
//   - "node_modules" matches any entry with exactly that name, anywhere in the tree, together
//     with everything below it.
package exclusion

import (
	"strings"

	"github.com/gobwas/glob"
)

// PatternKind discriminates the exclusion grammars.
type PatternKind int

const (
	KindBareName PatternKind = iota
	KindRootAnchored
	KindWildcard
)

const (
	rootAnchorPrefix = "/"
	pathSeparator    = "/"
	wildcardToken    = "**"
)

// String returns the grammar name used in logs.
func (kind PatternKind) String() string {
	switch kind {
	case KindRootAnchored:
		return "root-anchored"
	case KindWildcard:
		return "wildcard"
	default:
		return "bare-name"
	}
}

// Pattern is one parsed exclusion pattern.
type Pattern struct {
	Source string
	Kind   PatternKind
	// Value is the root-relative path for root-anchored patterns and the literal name for bare names.
	Value    string
	compiled glob.Glob
}

// ParsePattern detects the grammar of source and compiles it.
func ParsePattern(source string) Pattern {
	switch {
	case strings.HasPrefix(source, rootAnchorPrefix):
		return Pattern{Source: source, Kind: KindRootAnchored, Value: strings.TrimPrefix(source, rootAnchorPrefix)}
	case strings.Contains(source, wildcardToken):
		return Pattern{Source: source, Kind: KindWildcard, Value: source, compiled: compileWildcard(source)}
	default:
		return Pattern{Source: source, Kind: KindBareName, Value: source}
	}
}

// compileWildcard builds a suffix-anchored glob in which only "**" is special.
// Quoting the literal parts keeps characters such as "*", "?", "[" and "{" literal.
func compileWildcard(source string) glob.Glob {
	literalParts := strings.Split(source, wildcardToken)
	for index, literalPart := range literalParts {
		literalParts[index] = glob.QuoteMeta(literalPart)
	}
	expression := strings.Join(literalParts, wildcardToken)
	if !strings.HasPrefix(expression, wildcardToken) {
		expression = wildcardToken + expression
	}
	// a quoted pattern always compiles
	return glob.MustCompile(expression)
}

// Matches reports whether the pattern excludes an entry, given its root-relative
// forward-slash path and its base name.
// A bare name also matches when any ancestor segment carries the name, so an entry below an
// excluded directory is reported excluded even when evaluated on its own.
func (pattern Pattern) Matches(relativePath, baseName string) bool {
	switch pattern.Kind {
	case KindRootAnchored:
		return relativePath == pattern.Value || strings.HasPrefix(relativePath, pattern.Value+pathSeparator)
	case KindWildcard:
		return pattern.compiled.Match(relativePath) || pattern.compiled.Match(baseName)
	default:
		if baseName == pattern.Value {
			return true
		}
		for _, segment := range strings.Split(relativePath, pathSeparator) {
			if segment == pattern.Value {
				return true
			}
		}
		return false
	}
}
