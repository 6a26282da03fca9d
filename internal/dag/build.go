package dag

import (
	"context"
	"os"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
)

// Build constructs the dependency graph over the discovered applications.
// One node is added per application and one edge per application reference;
// a reference that does not resolve within the set fails with
// DependencyNotFoundError. Path references never create edges.
func Build(ctx context.Context, apps map[string]*config.App) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building dependency graph.", "apps", len(apps))

	g := New()
	for name := range apps {
		g.AddNode(name)
	}

	for name, app := range apps {
		for _, dep := range app.Dependencies {
			if dep.Kind != config.DepApp {
				continue
			}
			if _, ok := apps[dep.App]; !ok {
				return nil, &DependencyNotFoundError{Name: dep.App, RequiredBy: name}
			}
			if err := g.AddEdge(dep.App, name); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Dependency graph built.", "nodes", g.Len())
	return g, nil
}

// ValidatePaths confirms that every path dependency's target exists on disk.
// The check is independent of cycle detection and runs before any hashing so
// a broken reference fails fast instead of mid-fold.
func ValidatePaths(apps map[string]*config.App) error {
	for name, app := range apps {
		for _, dep := range app.Dependencies {
			if dep.Kind != config.DepPath {
				continue
			}
			if _, err := os.Stat(dep.Path); err != nil {
				return &PathDependencyNotFoundError{Path: dep.Path, RequiredBy: name}
			}
		}
	}
	return nil
}
