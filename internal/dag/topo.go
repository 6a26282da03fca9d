package dag

import "sort"

// TopologicalOrder returns the node IDs in an order where every node appears
// after all nodes it depends on. Ties among unconstrained siblings are broken
// by name so the schedule is reproducible. A cycle fails with CycleError.
func (g *Graph) TopologicalOrder() ([]string, error) {
	order := make([]string, 0, g.Len())
	err := g.kahn(func(wave []string) {
		order = append(order, wave...)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Wavefronts groups the topological order into levels: every node in a wave
// depends only on nodes from earlier waves, so a whole wave may be processed
// concurrently once the previous one has completed.
func (g *Graph) Wavefronts() ([][]string, error) {
	var waves [][]string
	err := g.kahn(func(wave []string) {
		waves = append(waves, wave)
	})
	if err != nil {
		return nil, err
	}
	return waves, nil
}

// kahn runs Kahn's algorithm level by level, emitting each ready set in
// sorted name order.
func (g *Graph) kahn(emit func(wave []string)) error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	inDegree := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		inDegree[id] = len(n.deps)
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}

	visited := 0
	for len(ready) > 0 {
		sort.Strings(ready)
		wave := ready
		ready = nil

		emit(wave)
		visited += len(wave)

		for _, id := range wave {
			for depID := range g.nodes[id].dependents {
				inDegree[depID]--
				if inDegree[depID] == 0 {
					ready = append(ready, depID)
				}
			}
		}
	}

	if visited != len(g.nodes) {
		// Every unvisited node sits on or behind a cycle; name one that is
		// actually on it via the DFS check for a better message.
		if err := g.detectCyclesLocked(); err != nil {
			return err
		}
		return &CycleError{}
	}
	return nil
}

// detectCyclesLocked must be called with the graph lock held.
//
// Classic depth-first search with three sets of nodes:
// permanent: nodes that have been fully visited and are not part of a cycle.
// temporary: nodes currently in the recursion stack for the current traversal.
// unvisited: all other nodes.
func (g *Graph) detectCyclesLocked() error {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return &CycleError{Member: n.id}
		}
		temporary[n.id] = true
		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.id] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}
