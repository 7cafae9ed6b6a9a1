// Package cache memoizes parse results for callers that classify the same
// names repeatedly, such as library indexers re-scanning a collection.
// Parsed records are immutable, so handing the same pointer to every caller
// is sound; callers must not modify returned records.
package cache

import (
	"fmt"

	"github.com/mhmtszr/concurrent-swiss-map"

	scenereleasex "github.com/hiddenpdx/scene-releasex"
)

// Cache is a concurrency-safe memo of parse results keyed by release type
// and name. The zero value is not usable; create one with New.
type Cache struct {
	parsed *csmap.CsMap[string, *scenereleasex.ParsedRelease]
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		parsed: csmap.Create[string, *scenereleasex.ParsedRelease](),
	}
}

// Parse returns the cached record for (releaseType, name), running the
// parser on first use. Concurrent first calls for the same key may both
// parse; the result is identical either way because parsing is
// deterministic.
func (c *Cache) Parse(releaseType scenereleasex.ReleaseType, name string) *scenereleasex.ParsedRelease {
	key := cacheKey(releaseType, name)
	if rel, ok := c.parsed.Load(key); ok {
		return rel
	}
	rel := scenereleasex.Parse(releaseType, name)
	c.parsed.Store(key, rel)
	return rel
}

// Len reports how many distinct (releaseType, name) pairs are cached.
func (c *Cache) Len() int {
	return c.parsed.Count()
}

func cacheKey(releaseType scenereleasex.ReleaseType, name string) string {
	return fmt.Sprintf("%s:%s", releaseType, name)
}
