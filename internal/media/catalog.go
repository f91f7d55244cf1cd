// Package media holds the immutable catalog of embeddable media elements.
//
// A Catalog is built once at startup and only read afterwards, so it is
// safe for concurrent use without locking. Lookup is total: unknown or
// empty ids resolve to the catalog's default entry.
package media

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// Catalog is a read-only registry of media definitions keyed by MediaID.
type Catalog struct {
	defaultKey selection.MediaID
	entries    map[selection.MediaID]Definition
}

// NewCatalog validates defs and builds a catalog whose fallback entry is
// defaultKey. Tag names must be unique and every package map needs a default.
func NewCatalog(defaultKey selection.MediaID, defs ...Definition) (*Catalog, error) {
	entries := make(map[selection.MediaID]Definition, len(defs))
	tags := make(map[string]selection.MediaID, len(defs))

	for i, def := range defs {
		field := fmt.Sprintf("media[%d]", i)

		if strings.TrimSpace(string(def.Key)) == "" {
			return nil, pserrors.NewValidationError(field+".key", "key is required", nil)
		}
		if _, exists := entries[def.Key]; exists {
			return nil, pserrors.NewValidationError(field+".key", fmt.Sprintf("duplicate media key %q", def.Key), nil)
		}
		if strings.TrimSpace(def.TagName) == "" {
			return nil, pserrors.NewValidationError(field+".tag", "tag name is required", nil)
		}
		if owner, exists := tags[def.TagName]; exists {
			return nil, pserrors.NewValidationError(field+".tag", fmt.Sprintf("tag %q already used by %q", def.TagName, owner), nil)
		}
		if def.Packages != nil && strings.TrimSpace(def.Packages.Default) == "" {
			return nil, pserrors.NewValidationError(field+".package.default", "package map requires a default entry", nil)
		}

		entries[def.Key] = def.clone()
		tags[def.TagName] = def.Key
	}

	if _, ok := entries[defaultKey]; !ok {
		return nil, pserrors.NewValidationError("default", fmt.Sprintf("default media %q is not in the catalog", defaultKey), nil)
	}

	return &Catalog{defaultKey: defaultKey, entries: entries}, nil
}

// Lookup returns the definition for id, or the default entry when id is
// empty or unknown.
func (c *Catalog) Lookup(id selection.MediaID) Definition {
	if def, ok := c.entries[selection.ParseMedia(string(id))]; ok {
		return def.clone()
	}
	return c.Default()
}

// Get is the strict variant of Lookup.
func (c *Catalog) Get(id selection.MediaID) (Definition, bool) {
	def, ok := c.entries[id]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Default returns the fallback definition.
func (c *Catalog) Default() Definition {
	return c.entries[c.defaultKey].clone()
}

// DefaultKey returns the key of the fallback definition.
func (c *Catalog) DefaultKey() selection.MediaID {
	return c.defaultKey
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Definitions returns copies of every definition sorted by key, with the
// default entry first.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.entries))
	for _, def := range c.entries {
		out = append(out, def.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key == c.defaultKey {
			return true
		}
		if out[j].Key == c.defaultKey {
			return false
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Extend returns a new catalog holding c's definitions plus defs. A
// definition whose key already exists replaces the original one.
func (c *Catalog) Extend(defs ...Definition) (*Catalog, error) {
	replaced := make(map[selection.MediaID]Definition, len(defs))
	for _, def := range defs {
		replaced[def.Key] = def
	}

	merged := make([]Definition, 0, len(c.entries)+len(defs))
	for _, def := range c.Definitions() {
		if _, ok := replaced[def.Key]; ok {
			continue
		}
		merged = append(merged, def)
	}
	merged = append(merged, defs...)

	return NewCatalog(c.defaultKey, merged...)
}
