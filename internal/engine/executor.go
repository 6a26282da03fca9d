package engine

import (
	"context"
	"sync"

	"github.com/Arsolitt/yeth/internal/config"
	"github.com/Arsolitt/yeth/internal/ctxlog"
	"github.com/Arsolitt/yeth/internal/dag"
	"github.com/Arsolitt/yeth/internal/digest"
)

// computeParallel hashes applications wavefront by wavefront. Every
// application in a wave depends only on earlier waves, so a wave may run on
// a worker pool; the WaitGroup forms the barrier between waves and wave
// results are merged into the shared map only at that barrier. Workers read
// the shared map without locking because it is never written during a wave.
// The output is byte-identical to the sequential fold: concurrency shows up
// in wall-clock time only.
func (e *Engine) computeParallel(ctx context.Context, apps map[string]*config.App, graph *dag.Graph, cache *digest.Cache) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	waves, err := graph.Wavefronts()
	if err != nil {
		return nil, err
	}
	logger.Debug("Hashing applications concurrently.", "workers", e.cfg.Workers, "wavefronts", len(waves))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	hashes := make(map[string]string, len(apps))
	for i, wave := range waves {
		logger.Debug("Starting wavefront.", "wave", i, "apps", len(wave))

		nameChan := make(chan string, len(wave))
		for _, name := range wave {
			nameChan <- name
		}
		close(nameChan)

		var (
			mu         sync.Mutex
			waveHashes = make(map[string]string, len(wave))
			wg         sync.WaitGroup
			errOnce    sync.Once
			runErr     error
		)

		workers := e.cfg.Workers
		if workers > len(wave) {
			workers = len(wave)
		}
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(workerID int) {
				defer wg.Done()
				for name := range nameChan {
					if runCtx.Err() != nil {
						return
					}
					finalHash, err := e.hashApp(runCtx, apps[name], hashes, cache)
					if err != nil {
						errOnce.Do(func() {
							runErr = err
							cancel()
						})
						return
					}
					mu.Lock()
					waveHashes[name] = finalHash
					mu.Unlock()
				}
			}(w)
		}
		wg.Wait()

		if runErr != nil {
			return nil, runErr
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for name, finalHash := range waveHashes {
			hashes[name] = finalHash
		}
	}

	logger.Debug("All wavefronts completed.", "apps", len(hashes))
	return hashes, nil
}
