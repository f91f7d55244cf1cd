// Package snippet renders install instructions and embed usage code for a
// media element in a given framework and embed method.
//
// Rendering is pure string construction: no I/O and no error path. Unknown
// framework and embed values are coerced to their defaults.
package snippet

import (
	"strings"

	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/resolver"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

// DefaultCDNBase serves npm packages as ES modules.
const DefaultCDNBase = "https://cdn.jsdelivr.net/npm"

// ThemePackage is the npm package that ships the player themes.
const ThemePackage = "player.style"

// Request is one snippet rendering input.
type Request struct {
	Media     media.Definition
	Framework selection.FrameworkID
	Embed     selection.EmbedMethod
	// Theme is an optional theme slug; when set the media element is
	// wrapped in the theme's custom element.
	Theme string
}

// Renderer renders snippets. The zero value uses DefaultCDNBase and
// unpinned package versions.
type Renderer struct {
	CDNBase string
	// Versions pins npm packages (by root name) to a version or range.
	Versions map[string]string
}

var defaultRenderer = &Renderer{}

// RenderInstall renders install text with the default renderer.
func RenderInstall(def media.Definition, framework selection.FrameworkID, embed selection.EmbedMethod) string {
	return defaultRenderer.Install(Request{Media: def, Framework: framework, Embed: embed})
}

// RenderEmbed renders embed text with the default renderer.
func RenderEmbed(def media.Definition, framework selection.FrameworkID, embed selection.EmbedMethod) string {
	return defaultRenderer.Embed(Request{Media: def, Framework: framework, Embed: embed})
}

// plan is a Request with every resolution step already taken.
type plan struct {
	def       media.Definition
	framework selection.FrameworkID
	embed     selection.EmbedMethod
	theme     string

	// pkg is the framework-specific package; cdnPkg the default one.
	pkg    resolver.Resolution
	cdnPkg resolver.Resolution
}

func (r *Renderer) plan(req Request) plan {
	framework := selection.ParseFramework(string(req.Framework))
	return plan{
		def:       req.Media,
		framework: framework,
		embed:     selection.ParseEmbed(string(req.Embed)),
		theme:     strings.ToLower(strings.TrimSpace(req.Theme)),
		pkg:       resolver.Resolve(req.Media, framework),
		cdnPkg:    resolver.DefaultPackage(req.Media),
	}
}

func (p plan) template() bool {
	return p.embed == selection.EmbedTemplate
}

func (p plan) themed() bool {
	return p.theme != ""
}

func (p plan) themeTag() string {
	return "media-theme-" + p.theme
}

// themeImport is the module path of the theme for the planned framework.
func (p plan) themeImport() string {
	if p.framework == selection.FrameworkReact {
		return ThemePackage + "/" + p.theme + "/react"
	}
	return ThemePackage + "/" + p.theme
}

// scriptURLs are the CDN modules a template embed loads, theme first.
func (r *Renderer) scriptURLs(p plan) []string {
	var urls []string
	if p.themed() {
		urls = append(urls, r.cdnURL(ThemePackage+"/"+p.theme))
	}
	if p.cdnPkg.HasPackage() {
		urls = append(urls, r.cdnURL(p.cdnPkg.Package))
	}
	return urls
}

// installPackages are the npm packages a packaged embed needs, theme first.
func (r *Renderer) installPackages(p plan) []string {
	var pkgs []string
	if p.themed() {
		pkgs = append(pkgs, r.pinned(ThemePackage))
	}
	if p.pkg.HasPackage() {
		pkgs = append(pkgs, r.pinned(packageRoot(p.pkg.Package)))
	}
	return pkgs
}

func (r *Renderer) cdnURL(importPath string) string {
	base := strings.TrimRight(r.CDNBase, "/")
	if base == "" {
		base = DefaultCDNBase
	}
	root := packageRoot(importPath)
	sub := strings.TrimPrefix(importPath, root)
	return base + "/" + r.pinned(root) + sub + "/+esm"
}

func (r *Renderer) pinned(root string) string {
	if v, ok := r.Versions[root]; ok && strings.TrimSpace(v) != "" {
		return root + "@" + strings.TrimSpace(v)
	}
	return root
}

// packageRoot strips a subpath import down to the installable package,
// keeping the scope of scoped packages.
func packageRoot(importPath string) string {
	parts := strings.Split(importPath, "/")
	if strings.HasPrefix(importPath, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
