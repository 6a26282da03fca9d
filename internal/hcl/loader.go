// Package hcl is the HCL-backed implementation of the config.Loader
// interface. It parses yeth.hcl manifests and translates them into the
// format-agnostic application model.
package hcl

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/schema"
)

// Loader parses HCL manifest files.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadApp parses one manifest file into a config.App. The application
// directory is the manifest's parent, and the application name defaults to
// that directory's base name unless the manifest declares one explicitly.
func (l *Loader) LoadApp(ctx context.Context, manifestPath string) (*config.App, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding manifest file.", "path", manifestPath)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(manifestPath)
	if diags.HasErrors() {
		return nil, &config.ParseError{Path: manifestPath, Detail: diags.Error()}
	}

	var manifest schema.Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &manifest); diags.HasErrors() {
		return nil, &config.ParseError{Path: manifestPath, Detail: diags.Error()}
	}
	if manifest.App == nil {
		return nil, &config.ParseError{Path: manifestPath, Detail: "missing required 'app' block"}
	}

	appDir, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return nil, &config.ParseError{Path: manifestPath, Detail: err.Error()}
	}

	name := manifest.App.Name
	if name == "" {
		name = filepath.Base(appDir)
	}

	depStrings, err := stringList(manifest.App.Dependencies, "dependencies")
	if err != nil {
		return nil, &config.ParseError{Path: manifestPath, Detail: err.Error()}
	}
	exclude, err := stringList(manifest.App.Exclude, "exclude")
	if err != nil {
		return nil, &config.ParseError{Path: manifestPath, Detail: err.Error()}
	}

	deps := make([]config.Dependency, 0, len(depStrings))
	for _, raw := range depStrings {
		deps = append(deps, config.ParseDependency(raw, appDir))
	}

	logger.Debug("Manifest decoded.",
		"app", name,
		"dir", appDir,
		"dependencies", len(deps),
		"exclude_patterns", len(exclude),
	)

	return &config.App{
		Name:         name,
		Dir:          appDir,
		Dependencies: deps,
		Exclude:      exclude,
	}, nil
}
