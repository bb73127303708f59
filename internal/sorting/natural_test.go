package sorting

import (
	"slices"
	"testing"
)

func TestCompareNatural(t *testing.T) {
	testCases := []struct {
		name     string
		left     string
		right    string
		expected int
	}{
		{name: "numeric_runs_compare_by_value", left: "file2", right: "file10", expected: -1},
		{name: "zero_padding_is_ignored", left: "f2", right: "f02", expected: 0},
		{name: "case_is_ignored", left: "README", right: "readme", expected: 0},
		{name: "empty_sorts_first", left: "", right: "a", expected: -1},
		{name: "empty_before_number", left: "", right: "1", expected: -1},
		{name: "text_compares_lexically", left: "beta", right: "alpha", expected: 1},
		{name: "leading_numbers", left: "10.txt", right: "2.txt", expected: 1},
		{name: "prefix_sorts_first", left: "img", right: "img1", expected: -1},
		{name: "long_digit_runs_do_not_overflow", left: "v99999999999999999999999", right: "v100000000000000000000000", expected: -1},
		{name: "all_zero_runs_are_equal", left: "x000", right: "x0", expected: 0},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			actual := CompareNatural(NaturalKey(testCase.left), NaturalKey(testCase.right))
			if actual != testCase.expected {
				t.Fatalf("CompareNatural(%q, %q) = %d, expected %d", testCase.left, testCase.right, actual, testCase.expected)
			}
			reversed := CompareNatural(NaturalKey(testCase.right), NaturalKey(testCase.left))
			if reversed != -testCase.expected {
				t.Fatalf("CompareNatural(%q, %q) = %d, expected %d", testCase.right, testCase.left, reversed, -testCase.expected)
			}
		})
	}
}

func TestCompareTokensMixedKindsFallsBackToText(t *testing.T) {
	left := SortKey{tokens: []sortToken{{kind: tokenNumber, text: "5"}}}
	right := SortKey{tokens: []sortToken{{kind: tokenText, text: "a"}}}
	if CompareNatural(left, right) >= 0 {
		t.Fatalf("expected numeric token \"5\" to sort before text token \"a\"")
	}
	if CompareNatural(right, left) <= 0 {
		t.Fatalf("expected text token \"a\" to sort after numeric token \"5\"")
	}
}

func TestCompareNaturalSortsNames(t *testing.T) {
	names := []string{"file10", "File2", "file1", "file02b", "a"}
	slices.SortStableFunc(names, func(left, right string) int {
		return CompareNatural(NaturalKey(left), NaturalKey(right))
	})
	expected := []string{"a", "file1", "File2", "file02b", "file10"}
	if !slices.Equal(names, expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
}
