package media

import (
	"sort"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

// Definition describes one embeddable media source kind.
type Definition struct {
	Key              selection.MediaID `json:"key" yaml:"key"`
	Title            string            `json:"title" yaml:"title"`
	TagName          string            `json:"tag" yaml:"tag"`
	DefaultSourceURL string            `json:"src" yaml:"src"`
	// Packages is nil for native platform elements such as video and audio.
	Packages *PackageMap `json:"package,omitempty" yaml:"package,omitempty"`
}

// PackageMap maps frameworks to installable package names. Default is
// always present; Overrides only list frameworks that differ from it.
type PackageMap struct {
	Default   string                           `json:"default" yaml:"default"`
	Overrides map[selection.FrameworkID]string `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Native reports whether the element ships with the platform.
func (d Definition) Native() bool {
	return d.Packages == nil
}

// Override returns the framework-specific package, if one is listed.
func (p *PackageMap) Override(framework selection.FrameworkID) (string, bool) {
	if p == nil {
		return "", false
	}
	pkg, ok := p.Overrides[framework]
	if !ok || pkg == "" {
		return "", false
	}
	return pkg, true
}

// Frameworks returns the frameworks with an explicit override, sorted.
func (p *PackageMap) Frameworks() []selection.FrameworkID {
	if p == nil {
		return nil
	}
	out := make([]selection.FrameworkID, 0, len(p.Overrides))
	for fw := range p.Overrides {
		out = append(out, fw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d Definition) clone() Definition {
	if d.Packages == nil {
		return d
	}
	pkgs := &PackageMap{Default: d.Packages.Default}
	if len(d.Packages.Overrides) > 0 {
		pkgs.Overrides = make(map[selection.FrameworkID]string, len(d.Packages.Overrides))
		for fw, name := range d.Packages.Overrides {
			pkgs.Overrides[fw] = name
		}
	}
	d.Packages = pkgs
	return d
}
