package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDependency(t *testing.T) {
	appDir := filepath.Join("/repo", "backend")

	t.Run("bare name is an app reference", func(t *testing.T) {
		dep := ParseDependency("shared", appDir)
		assert.Equal(t, DepApp, dep.Kind)
		assert.Equal(t, "shared", dep.App)
		assert.Equal(t, "shared", dep.Raw)
	})

	t.Run("separator makes a path reference", func(t *testing.T) {
		dep := ParseDependency("lib/util", appDir)
		assert.Equal(t, DepPath, dep.Kind)
		assert.Equal(t, filepath.Join(appDir, "lib", "util"), dep.Path)
	})

	t.Run("relative marker makes a path reference", func(t *testing.T) {
		dep := ParseDependency("./file1.txt", appDir)
		assert.Equal(t, DepPath, dep.Kind)
		assert.Equal(t, filepath.Join(appDir, "file1.txt"), dep.Path)
	})

	t.Run("path references may escape the app directory", func(t *testing.T) {
		dep := ParseDependency("../shared", appDir)
		assert.Equal(t, DepPath, dep.Kind)
		assert.Equal(t, filepath.Join("/repo", "shared"), dep.Path)
	})

	t.Run("hidden-file style names are path references", func(t *testing.T) {
		dep := ParseDependency(".env", appDir)
		assert.Equal(t, DepPath, dep.Kind)
	})
}
