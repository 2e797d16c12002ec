package util

import (
    "os"
    "path/filepath"
)

func EnsureDir(path string) error {
    return os.MkdirAll(path, 0o755)
}

// EnsureParentDir creates the directory that will hold file.
func EnsureParentDir(file string) error {
    dir := filepath.Dir(file)
    if dir == "." || dir == "" {
        return nil
    }
    return EnsureDir(dir)
}
