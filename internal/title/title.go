// Package title composes descriptive theme titles from content entries.
package title

import (
	"strings"

	"github.com/alexisbeaulieu97/playerstyle/internal/content"
)

// SitePrefix is prepended by PageTitle.
const SitePrefix = "player.style - "

// Compose builds "[<framework> ]<theme> theme[ for <player>]". Absent
// optional entries drop their segment.
func Compose(theme content.Entry, framework, player content.Optional) string {
	var b strings.Builder

	if fw, ok := framework.Get(); ok {
		b.WriteString(fw.Title)
		b.WriteString(" ")
	}

	b.WriteString(theme.Title)
	b.WriteString(" theme")

	if p, ok := player.Get(); ok {
		b.WriteString(" for ")
		b.WriteString(p.Title)
	}

	return b.String()
}

// PageTitle returns the document title for a composed theme title.
func PageTitle(composed string) string {
	return SitePrefix + composed
}
