package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcluded(t *testing.T) {
	t.Run("no patterns excludes nothing", func(t *testing.T) {
		assert.False(t, Excluded("src/main.go", nil))
		assert.False(t, Excluded("src/main.go", []string{}))
	})

	t.Run("bare name matches any component", func(t *testing.T) {
		patterns := []string{"node_modules"}
		assert.True(t, Excluded("node_modules", patterns))
		assert.True(t, Excluded("node_modules/lib/index.js", patterns))
		assert.True(t, Excluded("packages/app/node_modules/x.js", patterns))
		assert.False(t, Excluded("src/main.go", patterns))
	})

	t.Run("component-wise not substring-wise", func(t *testing.T) {
		patterns := []string{"dist"}
		assert.True(t, Excluded("dist/bundle.js", patterns))
		assert.False(t, Excluded("distribution/bundle.js", patterns))
		assert.False(t, Excluded("src/distX/file", patterns))
	})

	t.Run("path pattern matches exact path and prefix", func(t *testing.T) {
		patterns := []string{"../shared/README.md"}
		assert.True(t, Excluded("../shared/README.md", patterns))
		assert.False(t, Excluded("../shared/README.md.bak", patterns))
		assert.False(t, Excluded("../shared/lib.go", patterns))

		dirPatterns := []string{"../shared/docs"}
		assert.True(t, Excluded("../shared/docs", dirPatterns))
		assert.True(t, Excluded("../shared/docs/a/b.md", dirPatterns))
		assert.False(t, Excluded("../shared/docsX/b.md", dirPatterns))
	})

	t.Run("patterns and candidates are cleaned before matching", func(t *testing.T) {
		assert.True(t, Excluded("./vendor/lib.go", []string{"vendor/"}))
		assert.True(t, Excluded("a/./b/file", []string{"a/b"}))
	})

	t.Run("multiple patterns matched independently", func(t *testing.T) {
		patterns := []string{"node_modules", "../shared/README.md"}
		assert.True(t, Excluded("x/node_modules/y", patterns))
		assert.True(t, Excluded("../shared/README.md", patterns))
		assert.False(t, Excluded("../shared/other.md", patterns))
	})
}
