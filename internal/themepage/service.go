// Package themepage assembles everything a theme page shows: the composed
// title, the theme description and the install and embed snippets for the
// requested selection.
package themepage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/playerstyle/internal/content"
	"github.com/alexisbeaulieu97/playerstyle/internal/logger"
	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/snippet"
	"github.com/alexisbeaulieu97/playerstyle/internal/title"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// Page is the resolved content of a theme page.
type Page struct {
	RequestID   string              `json:"request_id" yaml:"request_id"`
	Slug        string              `json:"slug" yaml:"slug"`
	Title       string              `json:"title" yaml:"title"`
	MetaTitle   string              `json:"meta_title" yaml:"meta_title"`
	ThemeTitle  string              `json:"theme_title" yaml:"theme_title"`
	Description string              `json:"description" yaml:"description"`
	Author      string              `json:"author,omitempty" yaml:"author,omitempty"`
	Selection   selection.Selection `json:"selection" yaml:"selection"`
	Media       media.Definition    `json:"media" yaml:"media"`
	Install     string              `json:"install" yaml:"install"`
	Embed       string              `json:"embed" yaml:"embed"`
}

// Service resolves theme pages.
type Service struct {
	repo     content.Repository
	catalog  *media.Catalog
	renderer *snippet.Renderer
	log      *logger.Logger
}

// NewService wires a Service. A nil catalog uses media.Builtin, a nil
// renderer the zero Renderer and a nil logger discards output.
func NewService(repo content.Repository, catalog *media.Catalog, renderer *snippet.Renderer, log *logger.Logger) *Service {
	if catalog == nil {
		catalog = media.Builtin()
	}
	if renderer == nil {
		renderer = &snippet.Renderer{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, catalog: catalog, renderer: renderer, log: log}
}

type lookupResult struct {
	entry content.Entry
	err   error
}

// Resolve builds the page for slug. A missing theme is returned as a
// NotFoundError; missing framework or player entries only drop their part
// of the title. A logger stored in ctx with logger.WithContext takes
// precedence over the one the Service was built with.
func (s *Service) Resolve(ctx context.Context, slug string, params selection.Params) (Page, error) {
	requestID := uuid.NewString()
	log := logger.FromContext(ctx, s.log).WithFields(map[string]any{"request_id": requestID, "theme": slug})

	sel := selection.Parse(params)
	frameworkSlug, hasFramework := selection.FindParam(params, selection.ParamFramework)
	playerSlug, hasPlayer := selection.FindParam(params, selection.ParamMedia)

	var (
		wg                sync.WaitGroup
		theme, fw, player lookupResult
	)

	lookup := func(dst *lookupResult, collection content.Collection, key string) {
		defer wg.Done()
		entry, err := s.repo.GetEntry(ctx, collection, key)
		*dst = lookupResult{entry: entry, err: err}
	}

	wg.Add(1)
	go lookup(&theme, content.Themes, slug)
	if hasFramework {
		wg.Add(1)
		go lookup(&fw, content.Frameworks, frameworkSlug)
	}
	if hasPlayer {
		wg.Add(1)
		go lookup(&player, content.Players, playerSlug)
	}
	wg.Wait()

	if theme.err != nil {
		if pserrors.IsNotFound(theme.err) {
			log.Debug("theme not found")
			return Page{}, theme.err
		}
		log.Error(theme.err, "theme lookup failed")
		return Page{}, fmt.Errorf("load theme %q: %w", slug, theme.err)
	}

	frameworkEntry := s.optional(log, content.Frameworks, hasFramework, fw)
	playerEntry := s.optional(log, content.Players, hasPlayer, player)

	composed := title.Compose(theme.entry, frameworkEntry, playerEntry)
	def := s.catalog.Lookup(sel.Media)
	req := snippet.Request{Media: def, Framework: sel.Framework, Embed: sel.Embed, Theme: theme.entry.Slug}

	log.WithFields(map[string]any{
		"media":           string(def.Key),
		"framework":       string(sel.Framework),
		"embed":           string(sel.Embed),
		"framework_entry": frameworkEntry.Present(),
		"player_entry":    playerEntry.Present(),
	}).Debug("theme page resolved")

	return Page{
		RequestID:   requestID,
		Slug:        theme.entry.Slug,
		Title:       composed,
		MetaTitle:   title.PageTitle(composed),
		ThemeTitle:  theme.entry.Title,
		Description: theme.entry.Description,
		Author:      theme.entry.Author,
		Selection:   selection.Selection{Media: def.Key, Framework: sel.Framework, Embed: sel.Embed},
		Media:       def,
		Install:     s.renderer.Install(req),
		Embed:       s.renderer.Embed(req),
	}, nil
}

func (s *Service) optional(log *logger.Logger, collection content.Collection, requested bool, res lookupResult) content.Optional {
	if !requested {
		return content.None()
	}
	if res.err != nil {
		if !pserrors.IsNotFound(res.err) {
			log.WithFields(map[string]any{"collection": string(collection)}).Warn(res.err, "optional lookup failed")
		}
		return content.None()
	}
	return content.Some(res.entry)
}
