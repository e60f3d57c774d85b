package files

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDirectory creates dir and any missing parents. It never fails when
// the directory already exists.
func EnsureDirectory(dir string) error {
	return os.MkdirAll(dir, os.ModePerm)
}

// Stem returns the file name without its extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
