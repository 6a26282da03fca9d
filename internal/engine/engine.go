// Package engine orchestrates the whole hash computation: manifest
// discovery, graph construction, validation, scheduling and the
// hash-propagation fold. It is the top-level core API; everything else is a
// library it calls.
package engine

import (
	"context"
	"fmt"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/fsutil"
)

// defaultCacheSize bounds the per-run path-digest cache.
const defaultCacheSize = 1024

// Config holds the explicit knobs of a hash run. It is threaded through the
// engine rather than kept as process-global state.
type Config struct {
	// Root is the directory scanned for application manifests.
	Root string
	// Workers is the concurrency level across applications. Values below
	// two select the sequential reference implementation.
	Workers int
	// ShortHash truncates displayed and persisted digests.
	ShortHash bool
	// ShortHashLength is the truncated length when ShortHash is set.
	ShortHashLength int
}

// Engine computes content-derived identifiers for the applications of a
// monorepo. Construction is cheap; all work happens in the methods.
type Engine struct {
	cfg    Config
	loader config.Loader
}

// New creates an Engine over the given configuration and manifest loader.
func New(cfg Config, loader config.Loader) *Engine {
	return &Engine{cfg: cfg, loader: loader}
}

// Discover walks the root for manifest files and parses each into an
// application model. Directories without a manifest are traversed but not
// collected; duplicate application names are fatal.
func (e *Engine) Discover(ctx context.Context) (map[string]*config.App, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Discovering applications.", "root", e.cfg.Root)

	manifests, err := fsutil.FindFilesByName(e.cfg.Root, config.ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", e.cfg.Root, err)
	}

	apps := make(map[string]*config.App, len(manifests))
	for _, manifestPath := range manifests {
		app, err := e.loader.LoadApp(ctx, manifestPath)
		if err != nil {
			return nil, err
		}
		if existing, ok := apps[app.Name]; ok {
			return nil, &config.DuplicateAppError{
				Name:     app.Name,
				Dir:      app.Dir,
				OtherDir: existing.Dir,
			}
		}
		apps[app.Name] = app
	}

	logger.Info("Application discovery finished.", "apps", len(apps))
	return apps, nil
}

// FormatHash applies the configured short-hash truncation to a digest.
func (e *Engine) FormatHash(digest string) string {
	if e.cfg.ShortHash && e.cfg.ShortHashLength < len(digest) {
		return digest[:e.cfg.ShortHashLength]
	}
	return digest
}
