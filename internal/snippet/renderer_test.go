package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

const (
	hlsSrc   = "https://stream.mux.com/Sc89iWAyNkhJ3P1rQ02nrEdCFTnfT01CZ2KmaEcxXfB008.m3u8"
	videoSrc = "https://stream.mux.com/Sc89iWAyNkhJ3P1rQ02nrEdCFTnfT01CZ2KmaEcxXfB008/low.mp4"
)

var allFrameworks = []selection.FrameworkID{
	selection.FrameworkHTML,
	selection.FrameworkJS,
	selection.FrameworkReact,
	selection.FrameworkVue,
	selection.FrameworkLit,
	selection.FrameworkSvelte,
}

func lookup(id selection.MediaID) media.Definition {
	return media.Builtin().Lookup(id)
}

func TestInstallTemplateUsesCDNScript(t *testing.T) {
	t.Parallel()

	def := lookup("hls")
	for _, fw := range append(allFrameworks, "angular") {
		got := RenderInstall(def, fw, selection.EmbedTemplate)
		require.NotContains(t, got, "npm install", "framework=%s", fw)
		require.Contains(t, got, def.DefaultSourceURL)
		require.Equal(t, `<script type="module" src="https://cdn.jsdelivr.net/npm/hls-video-element/+esm"></script>`+"\n"+
			"Then point <hls-video> at its default source: "+hlsSrc+"\n", got)
	}
}

func TestInstallPackagedNamesResolvedPackage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		media     selection.MediaID
		framework selection.FrameworkID
		want      string
	}{
		{"hls", selection.FrameworkHTML, "npm install hls-video-element\n"},
		{"hls", selection.FrameworkReact, "npm install hls-video-element\n"},
		{"mux", selection.FrameworkReact, "npm install @mux/mux-video-react\n"},
		{"mux", selection.FrameworkVue, "npm install @mux/mux-video\n"},
		{"youtube", selection.FrameworkSvelte, "npm install youtube-video-element\n"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, RenderInstall(lookup(tc.media), tc.framework, selection.EmbedPackaged),
			"media=%s framework=%s", tc.media, tc.framework)
	}
}

func TestInstallNativeNeedsNoPackage(t *testing.T) {
	t.Parallel()

	for _, embed := range []selection.EmbedMethod{selection.EmbedPackaged, selection.EmbedTemplate} {
		for _, fw := range allFrameworks {
			got := RenderInstall(lookup("video"), fw, embed)
			require.NotContains(t, got, "npm install")
			require.Contains(t, got, "<video> is a native element")
			require.Contains(t, got, videoSrc)
		}
	}
}

func TestEmbedNativeReactHasNoImport(t *testing.T) {
	t.Parallel()

	got := RenderEmbed(lookup("video"), selection.FrameworkReact, selection.EmbedPackaged)
	want := `export default function Player() {
  return (
    <video src="` + videoSrc + `" />
  );
}
`
	require.Equal(t, want, got)
	require.NotContains(t, got, "import")
}

func TestEmbedNativeNeverImports(t *testing.T) {
	t.Parallel()

	for _, id := range []selection.MediaID{"video", "audio"} {
		for _, fw := range allFrameworks {
			for _, embed := range []selection.EmbedMethod{selection.EmbedPackaged, selection.EmbedTemplate} {
				got := RenderEmbed(lookup(id), fw, embed)
				if fw == selection.FrameworkJS {
					assert.Contains(t, got, "document.createElement('"+string(id)+"')")
				} else {
					assert.Contains(t, got, "<"+string(id)+" ", "media=%s framework=%s embed=%s", id, fw, embed)
				}
				if fw == selection.FrameworkLit {
					// Only the lit runtime itself is imported.
					assert.Equal(t, 1, strings.Count(got, "import "))
					continue
				}
				assert.NotContains(t, got, "import ", "media=%s framework=%s embed=%s", id, fw, embed)
				assert.NotContains(t, got, "cdn.jsdelivr.net")
			}
		}
	}
}

func TestEmbedHTMLPackaged(t *testing.T) {
	t.Parallel()

	want := `<script type="module">
  import 'hls-video-element';
</script>

<hls-video src="` + hlsSrc + `"></hls-video>
`
	require.Equal(t, want, RenderEmbed(lookup("hls"), selection.FrameworkHTML, selection.EmbedPackaged))
}

func TestEmbedHTMLTemplate(t *testing.T) {
	t.Parallel()

	want := `<script type="module" src="https://cdn.jsdelivr.net/npm/hls-video-element/+esm"></script>

<hls-video src="` + hlsSrc + `"></hls-video>
`
	got := RenderEmbed(lookup("hls"), selection.FrameworkHTML, selection.EmbedTemplate)
	require.Equal(t, want, got)
	require.NotContains(t, got, "import")
}

func TestEmbedUnknownFrameworkMatchesHTML(t *testing.T) {
	t.Parallel()

	def := lookup("dash")
	require.Equal(t,
		RenderEmbed(def, selection.FrameworkHTML, selection.EmbedPackaged),
		RenderEmbed(def, "angular", "iframe"),
	)
}

func TestEmbedJSPackaged(t *testing.T) {
	t.Parallel()

	want := `import 'hls-video-element';

const media = document.createElement('hls-video');
media.src = '` + hlsSrc + `';
document.body.append(media);
`
	require.Equal(t, want, RenderEmbed(lookup("hls"), selection.FrameworkJS, selection.EmbedPackaged))
}

func TestEmbedJSTemplate(t *testing.T) {
	t.Parallel()

	got := RenderEmbed(lookup("vimeo"), selection.FrameworkJS, selection.EmbedTemplate)
	require.Contains(t, got, "loadScript('https://cdn.jsdelivr.net/npm/vimeo-video-element/+esm');")
	require.Contains(t, got, "document.createElement('vimeo-video')")
	require.NotContains(t, got, "import ")
}

func TestEmbedReactPackagedUsesOverride(t *testing.T) {
	t.Parallel()

	want := `import MuxVideo from '@mux/mux-video-react';

export default function Player() {
  return (
    <MuxVideo src="` + hlsSrc + `" />
  );
}
`
	require.Equal(t, want, RenderEmbed(lookup("mux"), selection.FrameworkReact, selection.EmbedPackaged))

	got := RenderEmbed(lookup("youtube"), selection.FrameworkReact, selection.EmbedPackaged)
	require.Contains(t, got, "import YoutubeVideo from 'youtube-video-element/react';")
	require.Contains(t, got, "<YoutubeVideo src=")
}

func TestEmbedReactTemplateUsesCustomElement(t *testing.T) {
	t.Parallel()

	got := RenderEmbed(lookup("hls"), selection.FrameworkReact, selection.EmbedTemplate)
	require.Contains(t, got, `// <script type="module" src="https://cdn.jsdelivr.net/npm/hls-video-element/+esm"></script>`)
	require.Contains(t, got, `<hls-video src="`+hlsSrc+`"></hls-video>`)
	require.NotContains(t, got, "import ")
}

func TestEmbedVuePackaged(t *testing.T) {
	t.Parallel()

	want := `<script setup>
import 'hls-video-element';
</script>

<template>
  <hls-video src="` + hlsSrc + `"></hls-video>
</template>
`
	require.Equal(t, want, RenderEmbed(lookup("hls"), selection.FrameworkVue, selection.EmbedPackaged))
}

func TestEmbedVueTemplate(t *testing.T) {
	t.Parallel()

	got := RenderEmbed(lookup("hls"), selection.FrameworkVue, selection.EmbedTemplate)
	require.True(t, strings.HasPrefix(got, "<!-- Load in index.html: -->\n"))
	require.Contains(t, got, "<template>\n  <hls-video")
}

func TestEmbedLitPackaged(t *testing.T) {
	t.Parallel()

	want := "import { LitElement, html } from 'lit';\n" +
		"import '@mux/mux-video';\n" +
		"\n" +
		"class MediaPlayer extends LitElement {\n" +
		"  render() {\n" +
		"    return html`\n" +
		"      <mux-video src=\"" + hlsSrc + "\"></mux-video>\n" +
		"    `;\n" +
		"  }\n" +
		"}\n" +
		"\n" +
		"customElements.define('media-player', MediaPlayer);\n"
	require.Equal(t, want, RenderEmbed(lookup("mux"), selection.FrameworkLit, selection.EmbedPackaged))
}

func TestEmbedSveltePackagedAndTemplate(t *testing.T) {
	t.Parallel()

	packaged := `<script>
  import 'wistia-video-element';
</script>

<wistia-video src="https://wesleyluyten.wistia.com/medias/oifkgmxnkb"></wistia-video>
`
	require.Equal(t, packaged, RenderEmbed(lookup("wistia"), selection.FrameworkSvelte, selection.EmbedPackaged))

	template := RenderEmbed(lookup("wistia"), selection.FrameworkSvelte, selection.EmbedTemplate)
	require.Contains(t, template, "<svelte:head>\n  <script type=\"module\" src=\"https://cdn.jsdelivr.net/npm/wistia-video-element/+esm\"></script>\n</svelte:head>")
}

func TestEmbedAlwaysUsesTagName(t *testing.T) {
	t.Parallel()

	for _, def := range media.Builtin().Definitions() {
		for _, fw := range allFrameworks {
			got := RenderEmbed(def, fw, selection.EmbedTemplate)
			require.Contains(t, got, def.TagName, "media=%s framework=%s", def.Key, fw)
			require.Contains(t, got, def.DefaultSourceURL)
		}
	}
}

func TestThemedEmbedWrapsMedia(t *testing.T) {
	t.Parallel()

	r := &Renderer{}
	got := r.Embed(Request{Media: lookup("hls"), Framework: selection.FrameworkHTML, Embed: selection.EmbedPackaged, Theme: "sleek"})
	want := `<script type="module">
  import 'player.style/sleek';
  import 'hls-video-element';
</script>

<media-theme-sleek>
  <hls-video slot="media" src="` + hlsSrc + `"></hls-video>
</media-theme-sleek>
`
	require.Equal(t, want, got)
}

func TestThemedReactEmbed(t *testing.T) {
	t.Parallel()

	r := &Renderer{}
	got := r.Embed(Request{Media: lookup("video"), Framework: selection.FrameworkReact, Theme: "Sutro"})
	want := `import MediaThemeSutro from 'player.style/sutro/react';

export default function Player() {
  return (
    <MediaThemeSutro>
      <video slot="media" src="` + videoSrc + `" />
    </MediaThemeSutro>
  );
}
`
	require.Equal(t, want, got)
}

func TestThemedJSEmbed(t *testing.T) {
	t.Parallel()

	r := &Renderer{}
	got := r.Embed(Request{Media: lookup("audio"), Framework: selection.FrameworkJS, Theme: "minimal"})
	require.Contains(t, got, "import 'player.style/minimal';\n\n")
	require.Contains(t, got, "media.slot = 'media';")
	require.Contains(t, got, "const theme = document.createElement('media-theme-minimal');")
	require.True(t, strings.HasSuffix(got, "theme.append(media);\ndocument.body.append(theme);\n"))
}

func TestThemedInstall(t *testing.T) {
	t.Parallel()

	r := &Renderer{}
	require.Equal(t, "npm install player.style hls-video-element\n",
		r.Install(Request{Media: lookup("hls"), Framework: selection.FrameworkReact, Theme: "sleek"}))
	require.Equal(t, "npm install player.style\n",
		r.Install(Request{Media: lookup("video"), Theme: "sleek"}))

	template := r.Install(Request{Media: lookup("hls"), Embed: selection.EmbedTemplate, Theme: "sleek"})
	require.Equal(t,
		`<script type="module" src="https://cdn.jsdelivr.net/npm/player.style/sleek/+esm"></script>`+"\n"+
			`<script type="module" src="https://cdn.jsdelivr.net/npm/hls-video-element/+esm"></script>`+"\n"+
			"Then point <hls-video> at its default source: "+hlsSrc+"\n",
		template)

	native := r.Install(Request{Media: lookup("video"), Embed: selection.EmbedTemplate, Theme: "sleek"})
	require.Equal(t,
		`<script type="module" src="https://cdn.jsdelivr.net/npm/player.style/sleek/+esm"></script>`+"\n"+
			"Then point <video> at its default source: "+videoSrc+"\n",
		native)
}

func TestPinnedVersionsAndCustomCDN(t *testing.T) {
	t.Parallel()

	r := &Renderer{
		CDNBase:  "https://esm.example.com/npm/",
		Versions: map[string]string{"hls-video-element": "^1.2.0", "@mux/mux-video": "0.20"},
	}

	require.Equal(t, "npm install hls-video-element@^1.2.0\n",
		r.Install(Request{Media: lookup("hls"), Framework: selection.FrameworkReact}))
	require.Equal(t, `<script type="module" src="https://esm.example.com/npm/@mux/mux-video@0.20/+esm"></script>`+"\n"+
		"Then point <mux-video> at its default source: "+hlsSrc+"\n",
		r.Install(Request{Media: lookup("mux"), Embed: selection.EmbedTemplate}))

	// Imports keep the bare module path.
	require.Contains(t, r.Embed(Request{Media: lookup("hls"), Framework: selection.FrameworkReact}),
		"from 'hls-video-element/react';")
}

func TestPackageRoot(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hls-video-element", packageRoot("hls-video-element/react"))
	require.Equal(t, "@mux/mux-video-react", packageRoot("@mux/mux-video-react"))
	require.Equal(t, "@mux/mux-video", packageRoot("@mux/mux-video/dist/react"))
	require.Equal(t, "player.style", packageRoot("player.style/sleek"))
}

func TestComponentName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "HlsVideo", componentName("hls-video"))
	require.Equal(t, "DashVideo", componentName("dash-video"))
	require.Equal(t, "MediaThemeTailwindAudio", themeComponent("tailwind-audio"))
}

func TestSourceIsEscaped(t *testing.T) {
	t.Parallel()

	def := media.Definition{Key: "odd", TagName: "odd-video", DefaultSourceURL: `https://example.com/a?b=1&c="x'`,
		Packages: &media.PackageMap{Default: "odd-video-element"}}

	html := RenderEmbed(def, selection.FrameworkHTML, selection.EmbedPackaged)
	require.Contains(t, html, `src="https://example.com/a?b=1&amp;c=&#34;x&#39;"`)

	js := RenderEmbed(def, selection.FrameworkJS, selection.EmbedPackaged)
	require.Contains(t, js, `media.src = 'https://example.com/a?b=1&c="x\'';`)
}
