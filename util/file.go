package util

import "os"

// EnsureDir creates the directory (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, os.ModePerm)
}
