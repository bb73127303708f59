// Package config loads application settings and exclusion pattern files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/srctree/internal/utils"
)

const commentPrefix = "#"

// LoadIgnoreFilePatterns reads one pattern per line from ignoreFilePath, skipping blank lines and
// "#" comments. A missing file yields no patterns.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadExclusionPatterns concatenates, in order, the patterns of the root's ignore file (when
// useIgnoreFile is set), configured patterns and command line patterns. Blank and duplicate
// patterns are left for exclusion.NewMatcher to drop.
func LoadExclusionPatterns(rootDirectoryPath string, configuredPatterns []string, commandLinePatterns []string, useIgnoreFile bool) ([]string, error) {
	var combinedPatterns []string

	if useIgnoreFile {
		ignoreFilePath := filepath.Join(rootDirectoryPath, utils.IgnoreFileName)
		filePatterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, rootDirectoryPath, loadError)
		}
		combinedPatterns = append(combinedPatterns, filePatterns...)
	}
	combinedPatterns = append(combinedPatterns, configuredPatterns...)
	combinedPatterns = append(combinedPatterns, commandLinePatterns...)

	return combinedPatterns, nil
}
