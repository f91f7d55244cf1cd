package content

import (
	"context"
	"sync"
)

type cacheKey struct {
	collection Collection
	slug       string
}

// CachedRepository memoises entries found by the wrapped repository.
// Misses and errors are not cached.
type CachedRepository struct {
	next Repository

	mu      sync.RWMutex
	entries map[cacheKey]Entry
}

// NewCachedRepository wraps next.
func NewCachedRepository(next Repository) *CachedRepository {
	return &CachedRepository{next: next, entries: make(map[cacheKey]Entry)}
}

// GetEntry implements Repository.
func (c *CachedRepository) GetEntry(ctx context.Context, collection Collection, slug string) (Entry, error) {
	key := cacheKey{collection: collection, slug: slug}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	entry, err := c.next.GetEntry(ctx, collection, slug)
	if err != nil {
		return Entry{}, err
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return entry, nil
}

// List delegates to the wrapped repository when it implements Lister.
func (c *CachedRepository) List(ctx context.Context, collection Collection) ([]Entry, error) {
	if lister, ok := c.next.(Lister); ok {
		return lister.List(ctx, collection)
	}
	return []Entry{}, nil
}

// Len returns the number of cached entries.
func (c *CachedRepository) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
