// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
)

// VersionFile is the per-application result file written next to a manifest.
// It is part of the housekeeping set so that re-running a hash computation
// over its own prior output is idempotent.
const VersionFile = "yeth.version"

// housekeeping entries are always skipped during discovery and hashing,
// regardless of user-configured exclusions.
var housekeeping = map[string]bool{
	".git":      true,
	".idea":     true,
	".DS_Store": true,
	VersionFile: true,
}

// Housekeeping reports whether a file or directory base name belongs to the
// always-excluded set (version control metadata, OS metadata, prior output).
func Housekeeping(name string) bool {
	return housekeeping[name]
}

// FindFilesByName recursively searches the given root path for all files with
// the specified base name. It returns a slice of their full paths. Housekeeping
// directories are pruned from the walk.
func FindFilesByName(rootPath string, name string) ([]string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && Housekeeping(d.Name()) {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == name {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
