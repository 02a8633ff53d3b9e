package utils

import (
	"os"
	"path/filepath"
)

// ChdirToExecutable moves the process into the directory holding its binary
// so that the fixed relative catalog paths resolve the same way no matter
// where the command is started from. It returns the new working directory.
// Under go run the executable sits in the build cache, so callers must be run
// as built binaries.
func ChdirToExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	if err := os.Chdir(dir); err != nil {
		return "", err
	}
	return dir, nil
}
