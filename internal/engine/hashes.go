package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/dag"
	"github.com/Arsolitt/yeth/internal/digest"
)

// ComputeHashes produces the final digest of every discovered application.
// The graph is built and fully validated (unresolved references, missing
// path targets, cycles) before any file is read, so a broken configuration
// never yields a partial result. Entries are recorded strictly in dependency
// order; the returned map is complete or the error is non-nil.
func (e *Engine) ComputeHashes(ctx context.Context, apps map[string]*config.App) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	if len(apps) == 0 {
		return nil, &NoApplicationsFoundError{Root: e.cfg.Root}
	}

	graph, err := dag.Build(ctx, apps)
	if err != nil {
		return nil, err
	}
	if err := dag.ValidatePaths(apps); err != nil {
		return nil, err
	}
	if err := graph.DetectCycles(); err != nil {
		return nil, err
	}

	cache, err := digest.NewCache(defaultCacheSize)
	if err != nil {
		return nil, err
	}

	if e.cfg.Workers > 1 {
		return e.computeParallel(ctx, apps, graph, cache)
	}

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	logger.Debug("Hashing applications sequentially.", "order", order)

	hashes := make(map[string]string, len(apps))
	for _, name := range order {
		finalHash, err := e.hashApp(ctx, apps[name], hashes, cache)
		if err != nil {
			return nil, err
		}
		hashes[name] = finalHash
	}
	return hashes, nil
}

// HashFor computes the digest of one application, hashing only its
// transitive dependency closure. The returned map covers the closure; the
// requested application is guaranteed present.
func (e *Engine) HashFor(ctx context.Context, apps map[string]*config.App, name string) (map[string]string, error) {
	if _, ok := apps[name]; !ok {
		return nil, &ApplicationNotFoundError{Name: name}
	}

	graph, err := dag.Build(ctx, apps)
	if err != nil {
		return nil, err
	}
	if err := dag.ValidatePaths(apps); err != nil {
		return nil, err
	}
	if err := graph.DetectCycles(); err != nil {
		return nil, err
	}

	closure, err := dependencyClosure(graph, name)
	if err != nil {
		return nil, err
	}

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	cache, err := digest.NewCache(defaultCacheSize)
	if err != nil {
		return nil, err
	}

	hashes := make(map[string]string, len(closure))
	for _, n := range order {
		if !closure[n] {
			continue
		}
		finalHash, err := e.hashApp(ctx, apps[n], hashes, cache)
		if err != nil {
			return nil, err
		}
		hashes[n] = finalHash
	}
	return hashes, nil
}

// hashApp folds one application: its own directory digest first, then each
// dependency digest in declared order. Application references are looked up
// in the already-populated result map; path references are digested fresh
// with the consuming application's exclusion set, matched against paths
// relative to the consuming application's directory.
func (e *Engine) hashApp(ctx context.Context, app *config.App, hashes map[string]string, cache *digest.Cache) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Hashing application.", "app", app.Name)

	own, err := digest.Directory(app.Dir, app.Dir, app.Exclude)
	if err != nil {
		return "", err
	}

	depHashes := make([]string, 0, len(app.Dependencies))
	for _, dep := range app.Dependencies {
		switch dep.Kind {
		case config.DepApp:
			depHash, ok := hashes[dep.App]
			if !ok {
				return "", &IncorrectOrderError{App: app.Name, Dependency: dep.App}
			}
			depHashes = append(depHashes, depHash)
		case config.DepPath:
			depHash, err := cache.Path(dep.Path, app.Dir, app.Exclude)
			if err != nil {
				return "", err
			}
			depHashes = append(depHashes, depHash)
		}
	}

	return foldHashes(own, depHashes), nil
}

// foldHashes combines an application's own digest with its dependency
// digests, in order, into the final digest.
func foldHashes(own string, depHashes []string) string {
	h := sha256.New()
	io.WriteString(h, own)
	for _, depHash := range depHashes {
		io.WriteString(h, depHash)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// dependencyClosure returns the set of the named node and everything it
// transitively depends on.
func dependencyClosure(graph *dag.Graph, name string) (map[string]bool, error) {
	closure := map[string]bool{name: true}
	stack := []string{name}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deps, err := graph.Dependencies(current)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if !closure[dep] {
				closure[dep] = true
				stack = append(stack, dep)
			}
		}
	}
	return closure, nil
}
