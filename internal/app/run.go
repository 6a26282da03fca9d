package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/engine"
)

// Run executes the main application logic: discovery, then either graph
// rendering or hash computation, then output and optional persistence.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	start := time.Now()

	apps, err := a.engine.Discover(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return &engine.NoApplicationsFoundError{Root: a.cfg.Root}
	}

	if a.cfg.ShowGraph {
		engine.Render(a.outW, apps)
		return nil
	}

	var hashes map[string]string
	if a.cfg.AppName != "" {
		hashes, err = a.engine.HashFor(ctx, apps, a.cfg.AppName)
	} else {
		hashes, err = a.engine.ComputeHashes(ctx, apps)
	}
	if err != nil {
		return err
	}
	a.logger.Info("Hash computation finished.", "apps", len(hashes))

	if a.cfg.WriteVersions {
		if err := a.engine.WriteVersions(ctx, apps, hashes); err != nil {
			return err
		}
	}

	if a.cfg.AppName != "" {
		finalHash := a.engine.FormatHash(hashes[a.cfg.AppName])
		if a.cfg.HashOnly {
			fmt.Fprintln(a.outW, finalHash)
		} else {
			fmt.Fprintf(a.outW, "%s %s\n", finalHash, a.cfg.AppName)
		}
	} else {
		names := make([]string, 0, len(hashes))
		for name := range hashes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(a.outW, "%s %s\n", a.engine.FormatHash(hashes[name]), name)
		}
	}

	if a.cfg.Verbose {
		fmt.Fprintln(a.outW)
		fmt.Fprintf(a.outW, "Execution time: %s\n", time.Since(start).Round(time.Microsecond))
		fmt.Fprintf(a.outW, "Applications processed: %d\n", len(hashes))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
