package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/srctree/internal/utils"
)

type configTestCase struct {
	name            string
	globalContent   string
	localContent    string
	explicitPath    string
	explicitContent string
	expectFormat    string
	expectHidden    *bool
	expectCopy      *bool
	expectUseIgnore *bool
	expectExclude   []string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func comparePointer(t *testing.T, label string, expected, actual *bool) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Fatalf("expected %s to be unset, got %v", label, *actual)
		}
		return
	}
	if actual == nil || *actual != *expected {
		t.Fatalf("expected %s=%v, got %v", label, *expected, actual)
	}
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:            "local_overrides_global",
			globalContent:   "tree:\n  format: json\n  hidden: true\n  exclude:\n    - build\n",
			localContent:    "tree:\n  format: xml\n  copy: false\n  exclude:\n    - /dist\n",
			expectFormat:    "xml",
			expectHidden:    boolPointer(true),
			expectCopy:      boolPointer(false),
			expectUseIgnore: nil,
			expectExclude:   []string{"/dist"},
		},
		{
			name:            "global_only",
			globalContent:   "tree:\n  use_ignore: false\n  exclude:\n    - \"**.o\"\n",
			expectFormat:    "",
			expectUseIgnore: boolPointer(false),
			expectExclude:   []string{"**.o"},
		},
		{
			name:            "explicit_path_replaces_local",
			globalContent:   "tree:\n  format: json\n",
			localContent:    "tree:\n  format: xml\n",
			explicitPath:    "custom.yaml",
			explicitContent: "tree:\n  format: raw\n  copy: true\n",
			expectFormat:    "raw",
			expectCopy:      boolPointer(true),
		},
		{
			name:         "no_files",
			expectFormat: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDirectory := t.TempDir()
			t.Setenv("HOME", homeDirectory)
			t.Setenv("USERPROFILE", homeDirectory)
			workingDirectory := t.TempDir()

			if testCase.globalContent != "" {
				globalDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
				if err := os.MkdirAll(globalDirectory, 0o755); err != nil {
					t.Fatalf("create global dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(globalDirectory, utils.ConfigFileName), []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				if err := os.WriteFile(filepath.Join(workingDirectory, utils.ConfigFileName), []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				if err := os.WriteFile(filepath.Join(workingDirectory, testCase.explicitPath), []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			configuration, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory, ExplicitFilePath: testCase.explicitPath})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if configuration.Tree.Format != testCase.expectFormat {
				t.Fatalf("expected format %q, got %q", testCase.expectFormat, configuration.Tree.Format)
			}
			comparePointer(t, "hidden", testCase.expectHidden, configuration.Tree.Hidden)
			comparePointer(t, "copy", testCase.expectCopy, configuration.Tree.Copy)
			comparePointer(t, "use_ignore", testCase.expectUseIgnore, configuration.Tree.UseIgnore)
			if len(testCase.expectExclude) > 0 && !reflect.DeepEqual(configuration.Tree.Exclude, testCase.expectExclude) {
				t.Fatalf("expected exclude %v, got %v", testCase.expectExclude, configuration.Tree.Exclude)
			}
		})
	}
}

func TestLoadApplicationConfigurationMissingExplicitFile(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	_, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: t.TempDir(), ExplicitFilePath: "missing.yaml"})
	if err == nil {
		t.Fatalf("expected error for missing explicit configuration file")
	}
}

func TestLoadApplicationConfigurationRejectsMalformedYAML(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)
	workingDirectory := t.TempDir()
	if err := os.WriteFile(filepath.Join(workingDirectory, utils.ConfigFileName), []byte("tree: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write local config: %v", err)
	}

	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory}); err == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}

func TestBoolOrDefault(t *testing.T) {
	if !BoolOrDefault(nil, true) {
		t.Fatalf("expected default when unset")
	}
	if BoolOrDefault(boolPointer(false), true) {
		t.Fatalf("expected explicit false to win over default")
	}
}
