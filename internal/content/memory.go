package content

import (
	"context"
	"sort"

	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// MemoryRepository is a fixed, map-backed Repository.
type MemoryRepository struct {
	entries map[Collection]map[string]Entry
}

// NewMemoryRepository builds a repository from entries grouped by collection.
func NewMemoryRepository(entries map[Collection][]Entry) *MemoryRepository {
	repo := &MemoryRepository{entries: make(map[Collection]map[string]Entry, len(entries))}
	for collection, list := range entries {
		bySlug := make(map[string]Entry, len(list))
		for _, entry := range list {
			bySlug[entry.Slug] = entry
		}
		repo.entries[collection] = bySlug
	}
	return repo
}

// GetEntry implements Repository.
func (r *MemoryRepository) GetEntry(ctx context.Context, collection Collection, slug string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if err := checkCollection(collection); err != nil {
		return Entry{}, err
	}
	entry, ok := r.entries[collection][slug]
	if !ok {
		return Entry{}, pserrors.NewNotFoundError(string(collection), slug)
	}
	return entry, nil
}

// List implements Lister.
func (r *MemoryRepository) List(ctx context.Context, collection Collection) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(r.entries[collection]))
	for _, entry := range r.entries[collection] {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}
