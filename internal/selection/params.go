package selection

import "strings"

// Params carries request parameters. It has the same shape as url.Values,
// so query strings and cobra flags can both feed it.
type Params map[string][]string

// Selection is the normalised triple used for resolution and rendering.
type Selection struct {
	Media     MediaID     `json:"media" yaml:"media"`
	Framework FrameworkID `json:"framework" yaml:"framework"`
	Embed     EmbedMethod `json:"embed" yaml:"embed"`
}

// Default returns the selection obtained from empty parameters.
func Default() Selection {
	return Selection{Media: DefaultMedia, Framework: FrameworkHTML, Embed: EmbedPackaged}
}

// FindParam returns the first non-blank value stored under key.
func FindParam(params Params, key string) (string, bool) {
	for _, value := range params[key] {
		if strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}

// Parse normalises params into a Selection, coercing every absent or
// unknown value to its default.
func Parse(params Params) Selection {
	media, _ := FindParam(params, ParamMedia)
	framework, _ := FindParam(params, ParamFramework)
	embed, _ := FindParam(params, ParamEmbed)

	return Selection{
		Media:     ParseMedia(media),
		Framework: ParseFramework(framework),
		Embed:     ParseEmbed(embed),
	}
}

// Values converts the selection back into parameters, omitting defaults.
func (s Selection) Values() Params {
	params := Params{}
	if s.Media != "" && s.Media != DefaultMedia {
		params[ParamMedia] = []string{string(s.Media)}
	}
	if s.Framework != "" && s.Framework != FrameworkHTML {
		params[ParamFramework] = []string{string(s.Framework)}
	}
	if s.Embed != "" && s.Embed != EmbedPackaged {
		params[ParamEmbed] = []string{string(s.Embed)}
	}
	return params
}

// FromFlags builds Params from individual flag values, skipping empty ones.
func FromFlags(media, framework, embed string) Params {
	params := Params{}
	if media != "" {
		params[ParamMedia] = []string{media}
	}
	if framework != "" {
		params[ParamFramework] = []string{framework}
	}
	if embed != "" {
		params[ParamEmbed] = []string{embed}
	}
	return params
}
