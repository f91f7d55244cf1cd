package media

import (
	"sync"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

const (
	muxPlaybackMP4  = "https://stream.mux.com/Sc89iWAyNkhJ3P1rQ02nrEdCFTnfT01CZ2KmaEcxXfB008/low.mp4"
	muxPlaybackHLS  = "https://stream.mux.com/Sc89iWAyNkhJ3P1rQ02nrEdCFTnfT01CZ2KmaEcxXfB008.m3u8"
	vimeoPlayerDASH = "https://player.vimeo.com/external/648359100.mpd?s=a4419a2e2113cc24a87aef2f93ef69a8e4c8fb0c"
)

var builtinDefinitions = []Definition{
	{
		Key:              "video",
		Title:            "Video file",
		TagName:          "video",
		DefaultSourceURL: muxPlaybackMP4,
	},
	{
		Key:              "audio",
		Title:            "Audio file",
		TagName:          "audio",
		DefaultSourceURL: muxPlaybackMP4,
	},
	{
		Key:              "hls",
		Title:            "HLS",
		TagName:          "hls-video",
		DefaultSourceURL: muxPlaybackHLS,
		Packages:         reactSubpath("hls-video-element"),
	},
	{
		Key:              "dash",
		Title:            "DASH",
		TagName:          "dash-video",
		DefaultSourceURL: vimeoPlayerDASH,
		Packages:         reactSubpath("dash-video-element"),
	},
	{
		Key:              "mux",
		Title:            "Mux",
		TagName:          "mux-video",
		DefaultSourceURL: muxPlaybackHLS,
		Packages: &PackageMap{
			Default:   "@mux/mux-video",
			Overrides: map[selection.FrameworkID]string{selection.FrameworkReact: "@mux/mux-video-react"},
		},
	},
	{
		Key:              "youtube",
		Title:            "YouTube",
		TagName:          "youtube-video",
		DefaultSourceURL: "https://www.youtube.com/watch?v=uxsOYVWclA0",
		Packages:         reactSubpath("youtube-video-element"),
	},
	{
		Key:              "vimeo",
		Title:            "Vimeo",
		TagName:          "vimeo-video",
		DefaultSourceURL: "https://vimeo.com/648359100",
		Packages:         reactSubpath("vimeo-video-element"),
	},
	{
		Key:              "wistia",
		Title:            "Wistia",
		TagName:          "wistia-video",
		DefaultSourceURL: "https://wesleyluyten.wistia.com/medias/oifkgmxnkb",
		Packages:         reactSubpath("wistia-video-element"),
	},
}

// reactSubpath is the common layout where React bindings live at <pkg>/react.
func reactSubpath(pkg string) *PackageMap {
	return &PackageMap{
		Default:   pkg,
		Overrides: map[selection.FrameworkID]string{selection.FrameworkReact: pkg + "/react"},
	}
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the process-wide catalog of built-in media elements.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		catalog, err := NewCatalog(selection.DefaultMedia, builtinDefinitions...)
		if err != nil {
			panic("media: invalid builtin catalog: " + err.Error())
		}
		builtinCatalog = catalog
	})
	return builtinCatalog
}
