// Package selection parses the three independent embed selections
// (media, framework, embed method) from loosely typed request parameters.
//
// Every selection is optional. An absent or unrecognised value coerces to
// the dimension's default instead of producing an error.
package selection

import "strings"

// Parameter keys understood by Parse.
const (
	ParamMedia     = "media"
	ParamFramework = "framework"
	ParamEmbed     = "embed"
)

// MediaID identifies an entry in the media element catalog.
type MediaID string

// DefaultMedia is the catalog key used when no media is selected.
const DefaultMedia MediaID = "video"

// FrameworkID identifies the client framework a snippet is written for.
type FrameworkID string

const (
	FrameworkHTML   FrameworkID = "html"
	FrameworkJS     FrameworkID = "js"
	FrameworkReact  FrameworkID = "react"
	FrameworkVue    FrameworkID = "vue"
	FrameworkLit    FrameworkID = "lit"
	FrameworkSvelte FrameworkID = "svelte"
)

// EmbedMethod says whether usage code assumes an installed package or a
// script loaded straight from a CDN.
type EmbedMethod string

const (
	EmbedPackaged EmbedMethod = "packaged"
	EmbedTemplate EmbedMethod = "template"
)

// Option is a picker entry for one of the closed enumerations.
type Option[T ~string] struct {
	Value T
	Title string
}

var frameworks = []Option[FrameworkID]{
	{Value: FrameworkHTML, Title: "HTML"},
	{Value: FrameworkJS, Title: "JS"},
	{Value: FrameworkReact, Title: "React"},
	{Value: FrameworkVue, Title: "Vue"},
	{Value: FrameworkLit, Title: "Lit"},
	{Value: FrameworkSvelte, Title: "Svelte"},
}

var embedMethods = []Option[EmbedMethod]{
	{Value: EmbedPackaged, Title: "Packaged"},
	{Value: EmbedTemplate, Title: "Template"},
}

// Frameworks lists the supported frameworks in picker order.
func Frameworks() []Option[FrameworkID] {
	return append([]Option[FrameworkID](nil), frameworks...)
}

// EmbedMethods lists the supported embed methods in picker order.
func EmbedMethods() []Option[EmbedMethod] {
	return append([]Option[EmbedMethod](nil), embedMethods...)
}

// Title returns the display name of the framework.
func (f FrameworkID) Title() string {
	for _, opt := range frameworks {
		if opt.Value == f {
			return opt.Title
		}
	}
	return frameworks[0].Title
}

// Title returns the display name of the embed method.
func (e EmbedMethod) Title() string {
	for _, opt := range embedMethods {
		if opt.Value == e {
			return opt.Title
		}
	}
	return embedMethods[0].Title
}

// ParseFramework coerces raw into a FrameworkID. "none", "" and unknown
// values yield FrameworkHTML.
func ParseFramework(raw string) FrameworkID {
	value := FrameworkID(normalize(raw))
	for _, opt := range frameworks {
		if opt.Value == value {
			return value
		}
	}
	return FrameworkHTML
}

// ParseEmbed coerces raw into an EmbedMethod; unknown values yield EmbedPackaged.
func ParseEmbed(raw string) EmbedMethod {
	if EmbedMethod(normalize(raw)) == EmbedTemplate {
		return EmbedTemplate
	}
	return EmbedPackaged
}

// ParseMedia normalises raw into a MediaID. Whether the id exists is the
// catalog's concern; an empty value yields DefaultMedia.
func ParseMedia(raw string) MediaID {
	value := normalize(raw)
	if value == "" {
		return DefaultMedia
	}
	return MediaID(value)
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
