package snippet

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type element struct {
	name        string
	attrs       []string
	selfClosing bool
}

func (e element) String() string {
	open := e.name
	if len(e.attrs) > 0 {
		open += " " + strings.Join(e.attrs, " ")
	}
	if e.selfClosing {
		return "<" + open + " />"
	}
	return "<" + open + "></" + e.name + ">"
}

// markup renders the media element, wrapped in the theme element when a
// theme is set. jsx selects React component names for packaged embeds.
func markup(p plan, jsx bool) []string {
	components := jsx && !p.template()

	mediaEl := element{name: p.def.TagName}
	if components && p.pkg.HasPackage() {
		mediaEl.name = componentName(p.def.TagName)
	}
	// JSX closes components and native tags inline; raw custom elements keep
	// an explicit closing tag.
	mediaEl.selfClosing = jsx && (components || !strings.Contains(mediaEl.name, "-"))

	if p.themed() {
		mediaEl.attrs = append(mediaEl.attrs, `slot="media"`)
	}
	mediaEl.attrs = append(mediaEl.attrs, fmt.Sprintf(`src="%s"`, attr(p.def.DefaultSourceURL)))

	if !p.themed() {
		return []string{mediaEl.String()}
	}

	themeName := p.themeTag()
	if components {
		themeName = themeComponent(p.theme)
	}
	return []string{
		"<" + themeName + ">",
		indent + mediaEl.String(),
		"</" + themeName + ">",
	}
}

// componentName turns a custom element tag into its React component name:
// "hls-video" becomes "HlsVideo".
func componentName(tag string) string {
	caser := cases.Title(language.English)
	parts := strings.FieldsFunc(tag, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

func themeComponent(theme string) string {
	return "MediaTheme" + componentName(theme)
}

func attr(value string) string {
	return html.EscapeString(value)
}

func jsString(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(value)
	return "'" + escaped + "'"
}
