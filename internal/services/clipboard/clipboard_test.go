package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopy(t *testing.T) {
	writeFailure := errors.New("xclip exited")
	testCases := []struct {
		name          string
		text          string
		unsupported   bool
		writeError    error
		expectWritten string
		expectError   error
	}{
		{name: "writes_text", text: "└── proj\n", expectWritten: "└── proj\n"},
		{name: "skips_empty_text", text: ""},
		{name: "reports_missing_clipboard", text: "tree", unsupported: true, expectError: ErrUnavailable},
		{name: "wraps_write_failure", text: "tree", writeError: writeFailure, expectWritten: "tree", expectError: writeFailure},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var written string
			service := &Service{
				writeAll: func(text string) error {
					written = text
					return testCase.writeError
				},
				unsupported: func() bool { return testCase.unsupported },
			}
			err := service.Copy(testCase.text)
			if testCase.expectError == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if testCase.expectError != nil && !errors.Is(err, testCase.expectError) {
				t.Fatalf("expected %v, got %v", testCase.expectError, err)
			}
			if written != testCase.expectWritten {
				t.Fatalf("expected %q written, got %q", testCase.expectWritten, written)
			}
		})
	}
}
