// Package digest computes deterministic, content-derived identifiers for
// files, directory subtrees and arbitrary filesystem paths. Digests depend on
// file bytes and relative path structure only, never on metadata, so two
// byte-identical trees produce identical digests regardless of host OS,
// timestamps or enumeration order.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Arsolitt/yeth/internal/fsutil"
)

// File returns the hex digest of exactly one file's byte content.
func File(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", &PathError{Op: "open", Path: filePath, Err: err}
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", &PathError{Op: "read", Path: filePath, Err: err}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Directory returns the aggregate hex digest of all files under root.
// Housekeeping entries and paths excluded by the patterns are dropped; the
// patterns are matched against each path expressed relative to base, which is
// the directory they were declared against. The remaining files are folded in
// bytewise order of their root-relative slash paths, each keyed by that
// relative path, so a rename changes the digest even when content does not.
// An empty enumeration yields the digest of the empty set, not an error.
func Directory(root string, base string, patterns []string) (string, error) {
	type entry struct {
		rel  string // slash path relative to root, the sort and fold key
		path string
	}
	var entries []entry

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return &PathError{Op: "walk", Path: p, Err: err}
		}
		if fsutil.Housekeeping(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relToBase, err := filepath.Rel(base, p)
		if err != nil {
			return &PathError{Op: "resolve", Path: p, Err: err}
		}
		if Excluded(relToBase, patterns) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Symbolic links and other irregular entries are skipped; WalkDir
		// already refuses to follow directory symlinks, so link cycles
		// cannot trap the walk.
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relToRoot, err := filepath.Rel(root, p)
		if err != nil {
			return &PathError{Op: "resolve", Path: p, Err: err}
		}
		entries = append(entries, entry{rel: filepath.ToSlash(relToRoot), path: p})
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })

	h := sha256.New()
	for _, e := range entries {
		fileDigest, err := File(e.path)
		if err != nil {
			return "", err
		}
		io.WriteString(h, e.rel)
		h.Write([]byte{0})
		io.WriteString(h, fileDigest)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Path dispatches to File or Directory depending on what the path is at call
// time. The patterns and base follow the Directory contract.
func Path(p string, base string, patterns []string) (string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return "", &PathError{Op: "stat", Path: p, Err: err}
	}
	switch {
	case info.Mode().IsRegular():
		return File(p)
	case info.IsDir():
		return Directory(p, base, patterns)
	default:
		return "", &NotFileOrDirError{Path: p}
	}
}
