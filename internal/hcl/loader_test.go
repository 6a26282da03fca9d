package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arsolitt/yeth/internal/config"
)

func writeManifest(t *testing.T, dir string, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, config.ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadApp(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()

	t.Run("full manifest", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "backend")
		path := writeManifest(t, dir, `
app {
  dependencies = ["common", "shared", "./file1.txt", "../shared"]
  exclude      = ["node_modules", "../shared/README.md"]
}
`)
		app, err := loader.LoadApp(ctx, path)
		require.NoError(t, err)

		assert.Equal(t, "backend", app.Name)
		assert.True(t, filepath.IsAbs(app.Dir))

		require.Len(t, app.Dependencies, 4)
		assert.Equal(t, config.DepApp, app.Dependencies[0].Kind)
		assert.Equal(t, "common", app.Dependencies[0].App)
		assert.Equal(t, config.DepApp, app.Dependencies[1].Kind)
		assert.Equal(t, config.DepPath, app.Dependencies[2].Kind)
		assert.Equal(t, filepath.Join(app.Dir, "file1.txt"), app.Dependencies[2].Path)
		assert.Equal(t, config.DepPath, app.Dependencies[3].Kind)

		assert.Equal(t, []string{"node_modules", "../shared/README.md"}, app.Exclude)
	})

	t.Run("declaration order is preserved", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "svc")
		path := writeManifest(t, dir, `
app {
  dependencies = ["zeta", "alpha", "mid"]
}
`)
		app, err := loader.LoadApp(ctx, path)
		require.NoError(t, err)
		got := make([]string, len(app.Dependencies))
		for i, d := range app.Dependencies {
			got[i] = d.Raw
		}
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, got)
	})

	t.Run("explicit name overrides directory name", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "svc-dir")
		path := writeManifest(t, dir, `
app {
  name         = "billing"
  dependencies = []
}
`)
		app, err := loader.LoadApp(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "billing", app.Name)
	})

	t.Run("empty app block is valid", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "leaf")
		path := writeManifest(t, dir, "app {}\n")
		app, err := loader.LoadApp(ctx, path)
		require.NoError(t, err)
		assert.Empty(t, app.Dependencies)
		assert.Empty(t, app.Exclude)
	})

	t.Run("malformed syntax is a parse error with the path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "bad")
		path := writeManifest(t, dir, "app {\n  dependencies = [\n")
		_, err := loader.LoadApp(ctx, path)
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, path, parseErr.Path)
	})

	t.Run("missing app block is a parse error", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "empty")
		path := writeManifest(t, dir, "\n")
		_, err := loader.LoadApp(ctx, path)
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Detail, "app")
	})

	t.Run("non-list dependencies is a parse error", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "wrongtype")
		path := writeManifest(t, dir, `
app {
  dependencies = 42
}
`)
		_, err := loader.LoadApp(ctx, path)
		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Detail, "dependencies")
	})

	t.Run("numbers convert to strings per HCL conversion rules", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "convert")
		path := writeManifest(t, dir, `
app {
  exclude = [123]
}
`)
		app, err := loader.LoadApp(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"123"}, app.Exclude)
	})
}
