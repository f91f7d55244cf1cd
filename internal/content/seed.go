package content

// Seed returns a repository with the stock themes, frameworks and players.
// The CLI uses it when no content directory is configured.
func Seed() *MemoryRepository {
	return NewMemoryRepository(map[Collection][]Entry{
		Themes: {
			{Slug: "minimal", Title: "Minimal", Description: "A minimal, flat video player theme.", Author: "luwes"},
			{Slug: "microvideo", Title: "Microvideo", Description: "A tiny player for short, looping clips.", Author: "luwes"},
			{Slug: "sleek", Title: "Sleek", Description: "A sleek theme with a floating control bar.", Author: "heff"},
			{Slug: "sutro", Title: "Sutro", Description: "Rounded controls inspired by the Sutro tower.", Author: "heff"},
			{Slug: "notflix", Title: "Notflix", Description: "A theme reminiscent of a certain streaming service.", Author: "luwes"},
			{Slug: "instaplay", Title: "Instaplay", Description: "Tap-to-play controls for social video.", Author: "dylanjha"},
		},
		Frameworks: {
			{Slug: "html", Title: "HTML"},
			{Slug: "js", Title: "JS"},
			{Slug: "react", Title: "React"},
			{Slug: "vue", Title: "Vue"},
			{Slug: "lit", Title: "Lit"},
			{Slug: "svelte", Title: "Svelte"},
		},
		Players: {
			{Slug: "video", Title: "Video file"},
			{Slug: "audio", Title: "Audio file"},
			{Slug: "hls", Title: "HLS"},
			{Slug: "dash", Title: "DASH"},
			{Slug: "mux", Title: "Mux"},
			{Slug: "youtube", Title: "YouTube"},
			{Slug: "vimeo", Title: "Vimeo"},
			{Slug: "wistia", Title: "Wistia"},
			{Slug: "cloudflare", Title: "Cloudflare"},
			{Slug: "jwplayer", Title: "JW Player"},
			{Slug: "videojs", Title: "Video.js"},
		},
	})
}
