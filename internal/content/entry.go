// Package content resolves descriptive entries (themes, frameworks,
// players) by collection and slug.
package content

import (
	"context"
	"fmt"
	"slices"
	"strings"

	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// Collection names a group of entries.
type Collection string

const (
	Themes     Collection = "themes"
	Frameworks Collection = "frameworks"
	Players    Collection = "players"
)

// Collections lists every known collection.
func Collections() []Collection {
	return []Collection{Themes, Frameworks, Players}
}

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	return slices.Contains(Collections(), c)
}

// ErrNotFound matches every not-found error returned by a Repository.
var ErrNotFound = pserrors.ErrNotFound

// Entry is the descriptive record behind a slug.
type Entry struct {
	Slug        string `json:"slug" yaml:"slug" validate:"required,slug"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
}

// Repository looks up entries. A missing entry yields an error matching
// ErrNotFound.
type Repository interface {
	GetEntry(ctx context.Context, collection Collection, slug string) (Entry, error)
}

// Lister is implemented by repositories that can enumerate a collection.
type Lister interface {
	List(ctx context.Context, collection Collection) ([]Entry, error)
}

func checkCollection(collection Collection) error {
	if !collection.Valid() {
		known := make([]string, 0, len(Collections()))
		for _, c := range Collections() {
			known = append(known, string(c))
		}
		return pserrors.NewValidationError("collection",
			fmt.Sprintf("unknown collection %q (known: %s)", collection, strings.Join(known, ", ")), nil)
	}
	return nil
}
