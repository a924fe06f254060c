package textstyle

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 128

type cacheKey struct {
	variant Variant
	text    string
}

type cacheEntry struct {
	styled string
	err    error
}

// Cache memoises Style results. The same title and artists are restyled on
// every tick while a track plays, so a small LRU removes almost all the work.
type Cache struct {
	entries *lru.Cache[cacheKey, cacheEntry]
}

// NewCache creates a cache holding at most size results.
// A non-positive size falls back to the default.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	// lru.New only fails on a non-positive size
	entries, _ := lru.New[cacheKey, cacheEntry](size)
	return &Cache{entries: entries}
}

// Style is textstyle.Style with the result of (text, variant) cached,
// failures included.
func (c *Cache) Style(text string, v Variant) (string, error) {
	key := cacheKey{variant: v, text: text}
	if e, ok := c.entries.Get(key); ok {
		return e.styled, e.err
	}

	styled, err := Style(text, v.Mapping())
	c.entries.Add(key, cacheEntry{styled: styled, err: err})
	return styled, err
}

// Len reports how many results are cached
func (c *Cache) Len() int {
	return c.entries.Len()
}
