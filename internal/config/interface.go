package config

import "context"

// Loader is the interface for a format-specific manifest loader. The engine
// depends on this interface only; the concrete HCL implementation lives in
// internal/hcl.
type Loader interface {
	// LoadApp reads one manifest file and translates it into the
	// format-agnostic model. The application is named after the manifest's
	// containing directory unless the manifest declares an explicit name.
	LoadApp(ctx context.Context, manifestPath string) (*App, error)
}
