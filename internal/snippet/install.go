package snippet

import (
	"fmt"
	"strings"
)

// Install renders the installation instructions for req.
//
// Packaged embeds get a single npm line. Template embeds and native
// elements never produce a package-manager line: template embeds load the
// default package from the CDN and name the default source to point the
// element at, native elements need nothing beyond their default source.
func (r *Renderer) Install(req Request) string {
	p := r.plan(req)

	if p.template() {
		urls := r.scriptURLs(p)
		if len(urls) == 0 {
			return nativeInstall(p)
		}
		lines := make([]string, 0, len(urls))
		for _, url := range urls {
			lines = append(lines, scriptTag(url))
		}
		lines = append(lines, sourceHint(p))
		return strings.Join(lines, "\n") + "\n"
	}

	pkgs := r.installPackages(p)
	if len(pkgs) == 0 {
		return nativeInstall(p)
	}
	return "npm install " + strings.Join(pkgs, " ") + "\n"
}

func nativeInstall(p plan) string {
	return fmt.Sprintf("<%s> is a native element, nothing to install.\nIt plays its source directly: %s\n",
		p.def.TagName, p.def.DefaultSourceURL)
}

func sourceHint(p plan) string {
	return fmt.Sprintf("Then point <%s> at its default source: %s", p.def.TagName, p.def.DefaultSourceURL)
}

func scriptTag(url string) string {
	return fmt.Sprintf(`<script type="module" src="%s"></script>`, attr(url))
}
