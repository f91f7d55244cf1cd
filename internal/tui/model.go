// Package tui implements the interactive snippet picker: one column per
// selection dimension and a live preview of the rendered snippets.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/snippet"
)

// Group is one selection column of the picker.
type Group int

const (
	GroupMedia Group = iota
	GroupFramework
	GroupEmbed
	groupCount
)

func (g Group) String() string {
	switch g {
	case GroupFramework:
		return "Framework"
	case GroupEmbed:
		return "Embed"
	default:
		return "Media"
	}
}

type item struct {
	value string
	title string
}

// Model contains the Bubbletea state of the picker.
type Model struct {
	renderer *snippet.Renderer
	catalog  *media.Catalog
	theme    string

	groups [groupCount][]item
	cursor [groupCount]int
	focus  Group

	keys keyMap
	help help.Model

	width     int
	confirmed bool
	cancelled bool
}

// Options configure NewModel. Zero values fall back to the built-in
// catalog, the default renderer and the default selection.
type Options struct {
	Catalog  *media.Catalog
	Renderer *snippet.Renderer
	Theme    string
	Initial  selection.Selection
}

// NewModel constructs a picker positioned on opts.Initial.
func NewModel(opts Options) Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = media.Builtin()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = &snippet.Renderer{}
	}

	m := Model{
		renderer: renderer,
		catalog:  catalog,
		theme:    opts.Theme,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	for _, def := range catalog.Definitions() {
		m.groups[GroupMedia] = append(m.groups[GroupMedia], item{value: string(def.Key), title: def.Title})
	}
	for _, opt := range selection.Frameworks() {
		m.groups[GroupFramework] = append(m.groups[GroupFramework], item{value: string(opt.Value), title: opt.Title})
	}
	for _, opt := range selection.EmbedMethods() {
		m.groups[GroupEmbed] = append(m.groups[GroupEmbed], item{value: string(opt.Value), title: opt.Title})
	}

	initial := opts.Initial
	m.cursor[GroupMedia] = m.indexOf(GroupMedia, string(catalog.Lookup(initial.Media).Key))
	m.cursor[GroupFramework] = m.indexOf(GroupFramework, string(selection.ParseFramework(string(initial.Framework))))
	m.cursor[GroupEmbed] = m.indexOf(GroupEmbed, string(selection.ParseEmbed(string(initial.Embed))))

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the currently highlighted selection.
func (m Model) Selection() selection.Selection {
	return selection.Selection{
		Media:     selection.MediaID(m.current(GroupMedia)),
		Framework: selection.FrameworkID(m.current(GroupFramework)),
		Embed:     selection.EmbedMethod(m.current(GroupEmbed)),
	}
}

// Request is the snippet request for the current selection.
func (m Model) Request() snippet.Request {
	sel := m.Selection()
	return snippet.Request{
		Media:     m.catalog.Lookup(sel.Media),
		Framework: sel.Framework,
		Embed:     sel.Embed,
		Theme:     m.theme,
	}
}

// Focus returns the focused column.
func (m Model) Focus() Group {
	return m.focus
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user quit without accepting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m Model) current(g Group) string {
	items := m.groups[g]
	if len(items) == 0 {
		return ""
	}
	return items[m.cursor[g]].value
}

func (m Model) indexOf(g Group, value string) int {
	for i, it := range m.groups[g] {
		if it.value == value {
			return i
		}
	}
	return 0
}
