package digest

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes Path digests within a single run. Several applications
// commonly reference the same shared tree; re-walking it per consumer is
// wasted I/O. The key covers the target, the match base and the normalized
// pattern set, so a hit can never change an observable digest.
type Cache struct {
	entries *lru.Cache[string, string]
}

// NewCache creates a digest cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Path behaves exactly like the package-level Path, consulting the cache first.
func (c *Cache) Path(p string, base string, patterns []string) (string, error) {
	key := cacheKey(p, base, patterns)
	if d, ok := c.entries.Get(key); ok {
		return d, nil
	}
	d, err := Path(p, base, patterns)
	if err != nil {
		return "", err
	}
	c.entries.Add(key, d)
	return d, nil
}

// cacheKey builds a stable key. Pattern order is irrelevant for matching, so
// the signature sorts a normalized copy.
func cacheKey(p string, base string, patterns []string) string {
	normalized := make([]string, len(patterns))
	for i, pat := range patterns {
		normalized[i] = normalize(pat)
	}
	sort.Strings(normalized)

	var b strings.Builder
	b.WriteString(p)
	b.WriteByte(0)
	b.WriteString(base)
	for _, pat := range normalized {
		b.WriteByte(0)
		b.WriteString(pat)
	}
	return b.String()
}
