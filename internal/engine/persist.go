package engine

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/digest"
	"github.com/Arsolitt/yeth/internal/fsutil"
)

// WriteVersions persists each computed digest to a version file next to the
// owning application's manifest. The version file belongs to the
// housekeeping set, so re-running the computation over its own output leaves
// every digest unchanged. This is a pure writer over an already-computed
// result: it never influences digest computation.
func (e *Engine) WriteVersions(ctx context.Context, apps map[string]*config.App, hashes map[string]string) error {
	logger := ctxlog.FromContext(ctx)

	for name, finalHash := range hashes {
		app, ok := apps[name]
		if !ok {
			return &ApplicationNotFoundError{Name: name}
		}
		versionPath := filepath.Join(app.Dir, fsutil.VersionFile)
		if err := os.WriteFile(versionPath, []byte(e.FormatHash(finalHash)), 0o644); err != nil {
			return &digest.PathError{Op: "write", Path: versionPath, Err: err}
		}
		logger.Debug("Version file written.", "app", name, "path", versionPath)
	}
	return nil
}
