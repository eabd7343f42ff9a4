package common

import (
	"os"
	"path/filepath"
)

// FileExist reports whether path names an existing file or directory.
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// AbsolutePath resolves filename against dir unless it is already absolute.
func AbsolutePath(dir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

