package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/srctree/internal/utils"
)

func TestLoadIgnoreFilePatterns(t *testing.T) {
	directory := t.TempDir()
	ignorePath := filepath.Join(directory, utils.IgnoreFileName)
	content := "# build output\n/build\n\n  node_modules  \n**.o\n"
	if err := os.WriteFile(ignorePath, []byte(content), 0o600); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	patterns, err := LoadIgnoreFilePatterns(ignorePath)
	if err != nil {
		t.Fatalf("LoadIgnoreFilePatterns error: %v", err)
	}
	expected := []string{"/build", "node_modules", "**.o"}
	if !reflect.DeepEqual(patterns, expected) {
		t.Fatalf("expected %v, got %v", expected, patterns)
	}
}

func TestLoadIgnoreFilePatternsMissingFile(t *testing.T) {
	patterns, err := LoadIgnoreFilePatterns(filepath.Join(t.TempDir(), utils.IgnoreFileName))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(patterns) != 0 {
		t.Fatalf("expected no patterns, got %v", patterns)
	}
}

func TestLoadExclusionPatterns(t *testing.T) {
	rootDirectory := t.TempDir()
	if err := os.WriteFile(filepath.Join(rootDirectory, utils.IgnoreFileName), []byte("/build\nvendor\n"), 0o600); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}

	testCases := []struct {
		name          string
		configured    []string
		commandLine   []string
		useIgnoreFile bool
		expected      []string
	}{
		{
			name:          "all_sources_in_order",
			configured:    []string{"**.log"},
			commandLine:   []string{"tmp", "vendor"},
			useIgnoreFile: true,
			expected:      []string{"/build", "vendor", "**.log", "tmp", "vendor"},
		},
		{
			name:          "ignore_file_disabled_keeps_raw_patterns",
			configured:    []string{" ", "**.log"},
			commandLine:   []string{"**.log"},
			useIgnoreFile: false,
			expected:      []string{" ", "**.log", "**.log"},
		},
		{
			name:          "nothing_configured",
			useIgnoreFile: false,
			expected:      nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			patterns, err := LoadExclusionPatterns(rootDirectory, testCase.configured, testCase.commandLine, testCase.useIgnoreFile)
			if err != nil {
				t.Fatalf("LoadExclusionPatterns error: %v", err)
			}
			if len(testCase.expected) == 0 {
				if len(patterns) != 0 {
					t.Fatalf("expected no patterns, got %v", patterns)
				}
				return
			}
			if !reflect.DeepEqual(patterns, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, patterns)
			}
		})
	}
}
