package digest

import "fmt"

// PathError is a typed I/O failure tagged with the offending path. It wraps
// the underlying OS error so callers can still inspect it with errors.Is.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// NotFileOrDirError reports a digest target that is neither a regular file
// nor a directory.
type NotFileOrDirError struct {
	Path string
}

func (e *NotFileOrDirError) Error() string {
	return fmt.Sprintf("path %s is neither a file nor a directory", e.Path)
}
