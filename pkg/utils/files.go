package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource reads the whole file at relPath into memory once and returns
// its text along with the resolved absolute path.
func ReadSource(relPath string) (src string, fullPath string, err error) {
	fullPath, _, err = GetPathInfo(relPath)
	if err != nil {
		return "", "", fmt.Errorf("resolve %q: %w", relPath, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fullPath, fmt.Errorf("read source: %w", err)
	}
	return string(data), fullPath, nil
}
