// Package resolver picks the installable package for a media definition
// and framework.
package resolver

import (
	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

// Kind distinguishes how a Resolution was reached.
type Kind int

const (
	// NotApplicable means the element is native and nothing is installed.
	NotApplicable Kind = iota
	// Found means the framework has an explicit override.
	Found
	// FallbackDefault means the framework uses the default package.
	FallbackDefault
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case FallbackDefault:
		return "fallback-default"
	default:
		return "not-applicable"
	}
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Kind    Kind
	Package string
}

// HasPackage reports whether something must be installed.
func (r Resolution) HasPackage() bool {
	return r.Kind != NotApplicable && r.Package != ""
}

// Resolve returns the framework override when listed, the default package
// otherwise, and NotApplicable for native elements.
func Resolve(def media.Definition, framework selection.FrameworkID) Resolution {
	if def.Packages == nil {
		return Resolution{Kind: NotApplicable}
	}
	if pkg, ok := def.Packages.Override(framework); ok {
		return Resolution{Kind: Found, Package: pkg}
	}
	return Resolution{Kind: FallbackDefault, Package: def.Packages.Default}
}

// DefaultPackage returns the framework-agnostic package, used when a
// script is loaded straight from a CDN.
func DefaultPackage(def media.Definition) Resolution {
	if def.Packages == nil {
		return Resolution{Kind: NotApplicable}
	}
	return Resolution{Kind: FallbackDefault, Package: def.Packages.Default}
}
