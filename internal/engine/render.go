package engine

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Arsolitt/yeth/internal/config"
)

// Render writes a human-readable view of the dependency structure: each
// application followed by its declared dependencies, tagged app, file, dir
// or missing. Display only; none of this output participates in any digest.
func Render(w io.Writer, apps map[string]*config.App) {
	fmt.Fprintf(w, "Dependency graph:\n\n")

	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		app := apps[name]
		fmt.Fprintln(w, name)
		if len(app.Dependencies) == 0 {
			fmt.Fprintln(w, "  └─ (no dependencies)")
		} else {
			for i, dep := range app.Dependencies {
				prefix := "├─"
				if i == len(app.Dependencies)-1 {
					prefix = "└─"
				}
				switch dep.Kind {
				case config.DepApp:
					fmt.Fprintf(w, "  %s %s (app)\n", prefix, dep.App)
				case config.DepPath:
					fmt.Fprintf(w, "  %s %s (%s)\n", prefix, dep.Path, pathKind(dep.Path))
				}
			}
		}
		fmt.Fprintln(w)
	}
}

// pathKind labels a path target for display. The graph can be rendered
// without path validation having run, so a target that cannot be stat'ed is
// called out rather than guessed at.
func pathKind(p string) string {
	info, err := os.Stat(p)
	if err != nil {
		return "missing"
	}
	if info.Mode().IsRegular() {
		return "file"
	}
	return "dir"
}
