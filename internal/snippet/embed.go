package snippet

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

const indent = "  "

// Embed renders framework-idiomatic usage code for req.
func (r *Renderer) Embed(req Request) string {
	p := r.plan(req)

	var lines []string
	switch p.framework {
	case selection.FrameworkJS:
		lines = r.embedJS(p)
	case selection.FrameworkReact:
		lines = r.embedReact(p)
	case selection.FrameworkVue:
		lines = r.embedVue(p)
	case selection.FrameworkLit:
		lines = r.embedLit(p)
	case selection.FrameworkSvelte:
		lines = r.embedSvelte(p)
	default:
		lines = r.embedHTML(p)
	}

	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) embedHTML(p plan) []string {
	var lines []string

	if p.template() {
		for _, url := range r.scriptURLs(p) {
			lines = append(lines, scriptTag(url))
		}
	} else if imports := sideEffectImports(p); len(imports) > 0 {
		lines = append(lines, `<script type="module">`)
		lines = append(lines, indentLines(imports, 1)...)
		lines = append(lines, `</script>`)
	}

	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return append(lines, markup(p, false)...)
}

func (r *Renderer) embedJS(p plan) []string {
	var lines []string

	if p.template() {
		if urls := r.scriptURLs(p); len(urls) > 0 {
			lines = append(lines,
				"function loadScript(src) {",
				indent+"const script = document.createElement('script');",
				indent+"script.type = 'module';",
				indent+"script.src = src;",
				indent+"document.head.append(script);",
				"}",
				"",
			)
			for _, url := range urls {
				lines = append(lines, fmt.Sprintf("loadScript(%s);", jsString(url)))
			}
			lines = append(lines, "")
		}
	} else if imports := sideEffectImports(p); len(imports) > 0 {
		lines = append(lines, imports...)
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("const media = document.createElement(%s);", jsString(p.def.TagName)))
	if p.themed() {
		lines = append(lines, "media.slot = 'media';")
	}
	lines = append(lines, fmt.Sprintf("media.src = %s;", jsString(p.def.DefaultSourceURL)))

	if p.themed() {
		lines = append(lines,
			"",
			fmt.Sprintf("const theme = document.createElement(%s);", jsString(p.themeTag())),
			"theme.append(media);",
			"document.body.append(theme);",
		)
	} else {
		lines = append(lines, "document.body.append(media);")
	}

	return lines
}

func (r *Renderer) embedReact(p plan) []string {
	var lines []string

	if p.template() {
		lines = append(lines, r.loadComments("//", "", p)...)
	} else {
		if p.themed() {
			lines = append(lines, fmt.Sprintf("import %s from %s;", themeComponent(p.theme), jsString(p.themeImport())))
		}
		if p.pkg.HasPackage() {
			lines = append(lines, fmt.Sprintf("import %s from %s;", componentName(p.def.TagName), jsString(p.pkg.Package)))
		}
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines,
		"export default function Player() {",
		indent+"return (",
	)
	lines = append(lines, indentLines(markup(p, true), 2)...)
	return append(lines,
		indent+");",
		"}",
	)
}

func (r *Renderer) embedVue(p plan) []string {
	var lines []string

	if p.template() {
		lines = append(lines, r.loadComments("<!--", " -->", p)...)
	} else if imports := sideEffectImports(p); len(imports) > 0 {
		lines = append(lines, "<script setup>")
		lines = append(lines, imports...)
		lines = append(lines, "</script>")
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, "<template>")
	lines = append(lines, indentLines(markup(p, false), 1)...)
	return append(lines, "</template>")
}

func (r *Renderer) embedLit(p plan) []string {
	lines := []string{"import { LitElement, html } from 'lit';"}

	if p.template() {
		lines = append(lines, r.loadComments("//", "", p)...)
	} else {
		lines = append(lines, sideEffectImports(p)...)
	}

	lines = append(lines,
		"",
		"class MediaPlayer extends LitElement {",
		indent+"render() {",
		indent+indent+"return html`",
	)
	lines = append(lines, indentLines(markup(p, false), 3)...)
	return append(lines,
		indent+indent+"`;",
		indent+"}",
		"}",
		"",
		"customElements.define('media-player', MediaPlayer);",
	)
}

func (r *Renderer) embedSvelte(p plan) []string {
	var lines []string

	if p.template() {
		if urls := r.scriptURLs(p); len(urls) > 0 {
			lines = append(lines, "<svelte:head>")
			for _, url := range urls {
				lines = append(lines, indent+scriptTag(url))
			}
			lines = append(lines, "</svelte:head>")
		}
	} else if imports := sideEffectImports(p); len(imports) > 0 {
		lines = append(lines, "<script>")
		lines = append(lines, indentLines(imports, 1)...)
		lines = append(lines, "</script>")
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	return append(lines, markup(p, false)...)
}

// loadComments tells the reader to load the CDN scripts from their page
// shell, for frameworks that cannot import a URL directly.
func (r *Renderer) loadComments(open, close string, p plan) []string {
	urls := r.scriptURLs(p)
	if len(urls) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("%s Load in index.html:%s", open, close)}
	for _, url := range urls {
		lines = append(lines, fmt.Sprintf("%s %s%s", open, scriptTag(url), close))
	}
	return lines
}

// sideEffectImports registers the theme and media custom elements.
func sideEffectImports(p plan) []string {
	var lines []string
	if p.themed() {
		lines = append(lines, fmt.Sprintf("import %s;", jsString(p.themeImport())))
	}
	if p.pkg.HasPackage() {
		lines = append(lines, fmt.Sprintf("import %s;", jsString(p.pkg.Package)))
	}
	return lines
}

func indentLines(lines []string, depth int) []string {
	prefix := strings.Repeat(indent, depth)
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}
