package config

import (
	"path/filepath"
	"strings"
)

// ManifestFile is the name of the per-application manifest.
const ManifestFile = "yeth.hcl"

// DependencyKind discriminates the two dependency variants. The set is
// closed: every consumer must handle both kinds.
type DependencyKind int

const (
	// DepApp references another application by name.
	DepApp DependencyKind = iota
	// DepPath references a file or directory on disk.
	DepPath
)

// Dependency is one declared dependency of an application, either a
// reference to another application by name or a reference to a filesystem
// path resolved against the owning application's directory.
type Dependency struct {
	Kind DependencyKind
	// Raw is the dependency string exactly as declared in the manifest.
	Raw string
	// App is the referenced application name. Set only for DepApp.
	App string
	// Path is the resolved target path. Set only for DepPath.
	Path string
}

// ParseDependency classifies a declared dependency string. A string that
// contains a path separator or begins with a relative-path marker is a path
// dependency resolved against appDir; anything else names an application.
// The rule is purely syntactic and is applied once, here.
func ParseDependency(raw string, appDir string) Dependency {
	if strings.ContainsAny(raw, `/\`) || strings.HasPrefix(raw, ".") {
		return Dependency{
			Kind: DepPath,
			Raw:  raw,
			Path: filepath.Join(appDir, filepath.FromSlash(raw)),
		}
	}
	return Dependency{Kind: DepApp, Raw: raw, App: raw}
}

// App is the format-agnostic model of one discovered application.
type App struct {
	// Name uniquely identifies the application across the discovered set.
	Name string
	// Dir is the absolute path of the directory containing the manifest.
	Dir string
	// Dependencies preserves manifest declaration order; that order
	// determines the fold order of the final hash.
	Dependencies []Dependency
	// Exclude holds the raw exclusion patterns from the manifest.
	Exclude []string
}
