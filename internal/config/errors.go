package config

import "fmt"

// ParseError reports a manifest that could not be parsed or decoded. The
// whole run aborts on the first one: dependents of an unparsed manifest
// cannot be hashed correctly.
type ParseError struct {
	// Path is the manifest file that failed.
	Path string
	// Detail is the parser or decoder diagnostic text.
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %s: %s", e.Path, e.Detail)
}

// DuplicateAppError reports two manifests resolving to the same application
// name. Names key the dependency graph, so duplicates are fatal.
type DuplicateAppError struct {
	Name     string
	Dir      string
	OtherDir string
}

func (e *DuplicateAppError) Error() string {
	return fmt.Sprintf("duplicate application name %q: declared in both %s and %s", e.Name, e.OtherDir, e.Dir)
}
