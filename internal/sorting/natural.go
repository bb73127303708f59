// Package sorting orders directory entries the way project trees are usually read:
// build files first, then headers and sources, then everything else, with
// embedded numbers compared by value.
package sorting

import (
	"strings"
)

// tokenKind discriminates the two kinds of SortKey tokens.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenNumber
)

// sortToken is one run of a name: either a lower-cased text run or a digit run.
// Digit runs keep their digits with leading zeros trimmed so values of any length compare exactly.
type sortToken struct {
	kind tokenKind
	text string
}

// SortKey is the natural-order comparison key of a name.
type SortKey struct {
	tokens []sortToken
}

// NaturalKey splits name into alternating text and digit runs.
// The sequence always starts and ends with a text run, which may be empty, so two keys
// built from arbitrary names carry the same token kind at every shared position.
func NaturalKey(name string) SortKey {
	tokens := make([]sortToken, 0, 4)
	textStart := 0
	position := 0
	for position < len(name) {
		if !isASCIIDigit(name[position]) {
			position++
			continue
		}
		digitStart := position
		for position < len(name) && isASCIIDigit(name[position]) {
			position++
		}
		tokens = append(tokens,
			sortToken{kind: tokenText, text: strings.ToLower(name[textStart:digitStart])},
			sortToken{kind: tokenNumber, text: trimLeadingZeros(name[digitStart:position])},
		)
		textStart = position
	}
	tokens = append(tokens, sortToken{kind: tokenText, text: strings.ToLower(name[textStart:])})
	return SortKey{tokens: tokens}
}

// CompareNatural returns -1, 0 or +1 as a sorts before, equal to, or after b.
func CompareNatural(a, b SortKey) int {
	shared := min(len(a.tokens), len(b.tokens))
	for index := 0; index < shared; index++ {
		if result := compareTokens(a.tokens[index], b.tokens[index]); result != 0 {
			return result
		}
	}
	switch {
	case len(a.tokens) < len(b.tokens):
		return -1
	case len(a.tokens) > len(b.tokens):
		return 1
	default:
		return 0
	}
}

func compareTokens(left, right sortToken) int {
	if left.kind == tokenNumber && right.kind == tokenNumber {
		return compareDigitRuns(left.text, right.text)
	}
	// mixed kinds fall back to their textual form
	return strings.Compare(left.text, right.text)
}

// compareDigitRuns compares two zero-trimmed digit strings by numeric value.
func compareDigitRuns(left, right string) int {
	if len(left) != len(right) {
		if len(left) < len(right) {
			return -1
		}
		return 1
	}
	return strings.Compare(left, right)
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isASCIIDigit(character byte) bool {
	return character >= '0' && character <= '9'
}
