package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

func TestBuiltinTagNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]selection.MediaID{}
	for _, def := range Builtin().Definitions() {
		owner, dup := seen[def.TagName]
		require.False(t, dup, "tag %q shared by %q and %q", def.TagName, owner, def.Key)
		seen[def.TagName] = def.Key
	}
	require.Len(t, seen, 8)
}

func TestBuiltinPackageMapsHaveDefault(t *testing.T) {
	t.Parallel()

	for _, def := range Builtin().Definitions() {
		if def.Packages == nil {
			continue
		}
		require.NotEmpty(t, def.Packages.Default, "media %q", def.Key)
	}
}

func TestLookupUnknownMatchesOmitted(t *testing.T) {
	t.Parallel()

	catalog := Builtin()
	omitted := catalog.Lookup("")

	require.Equal(t, omitted, catalog.Lookup("no-such-media"))
	require.Equal(t, omitted, catalog.Lookup("cloudflare"))
	require.Equal(t, selection.MediaID("video"), omitted.Key)
	require.Equal(t, "video", omitted.TagName)
	require.True(t, omitted.Native())
}

func TestLookupKnownMedia(t *testing.T) {
	t.Parallel()

	cases := []struct {
		id      selection.MediaID
		tag     string
		pkg     string
		native  bool
		reactPk string
	}{
		{id: "audio", tag: "audio", native: true},
		{id: "hls", tag: "hls-video", pkg: "hls-video-element", reactPk: "hls-video-element/react"},
		{id: "dash", tag: "dash-video", pkg: "dash-video-element", reactPk: "dash-video-element/react"},
		{id: "mux", tag: "mux-video", pkg: "@mux/mux-video", reactPk: "@mux/mux-video-react"},
		{id: "youtube", tag: "youtube-video", pkg: "youtube-video-element", reactPk: "youtube-video-element/react"},
		{id: "vimeo", tag: "vimeo-video", pkg: "vimeo-video-element", reactPk: "vimeo-video-element/react"},
		{id: "wistia", tag: "wistia-video", pkg: "wistia-video-element", reactPk: "wistia-video-element/react"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.id), func(t *testing.T) {
			t.Parallel()

			def := Builtin().Lookup(tc.id)
			require.Equal(t, tc.id, def.Key)
			require.Equal(t, tc.tag, def.TagName)
			require.NotEmpty(t, def.DefaultSourceURL)
			require.Equal(t, tc.native, def.Native())
			if tc.native {
				return
			}
			require.Equal(t, tc.pkg, def.Packages.Default)
			override, ok := def.Packages.Override(selection.FrameworkReact)
			require.True(t, ok)
			require.Equal(t, tc.reactPk, override)
			_, ok = def.Packages.Override(selection.FrameworkVue)
			require.False(t, ok)
		})
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hls-video", Builtin().Lookup("HLS").TagName)
}

func TestLookupReturnsCopies(t *testing.T) {
	t.Parallel()

	def := Builtin().Lookup("hls")
	def.Packages.Overrides[selection.FrameworkVue] = "mutated"
	def.Packages.Default = "mutated"

	again := Builtin().Lookup("hls")
	require.Equal(t, "hls-video-element", again.Packages.Default)
	_, ok := again.Packages.Override(selection.FrameworkVue)
	require.False(t, ok)
}

func TestDefinitionsPutsDefaultFirst(t *testing.T) {
	t.Parallel()

	defs := Builtin().Definitions()
	require.Equal(t, selection.MediaID("video"), defs[0].Key)
	require.Equal(t, selection.MediaID("audio"), defs[1].Key)
	require.Equal(t, selection.MediaID("youtube"), defs[len(defs)-1].Key)
}

func TestNewCatalogRejectsDuplicateTag(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog("video",
		Definition{Key: "video", TagName: "video"},
		Definition{Key: "movie", TagName: "video"},
	)

	var validationErr *pserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "media[1].tag", validationErr.Field)
}

func TestNewCatalogRejectsPackageMapWithoutDefault(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog("video",
		Definition{Key: "video", TagName: "video"},
		Definition{Key: "hls", TagName: "hls-video", Packages: &PackageMap{
			Overrides: map[selection.FrameworkID]string{selection.FrameworkReact: "hls-video-element/react"},
		}},
	)

	var validationErr *pserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "media[1].package.default", validationErr.Field)
}

func TestNewCatalogRequiresDefaultKey(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog("video", Definition{Key: "audio", TagName: "audio"})
	require.Error(t, err)
}

func TestNewCatalogRejectsDuplicateKey(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog("video",
		Definition{Key: "video", TagName: "video"},
		Definition{Key: "video", TagName: "x-video"},
	)
	require.Error(t, err)
}

func TestExtendAddsAndReplaces(t *testing.T) {
	t.Parallel()

	extended, err := Builtin().Extend(
		Definition{Key: "cloudflare", Title: "Cloudflare", TagName: "cloudflare-video", DefaultSourceURL: "https://example.com/cf",
			Packages: &PackageMap{Default: "cloudflare-video-element"}},
		Definition{Key: "hls", Title: "HLS", TagName: "hls-video", DefaultSourceURL: "https://example.com/hls.m3u8",
			Packages: &PackageMap{Default: "hls-video-element"}},
	)
	require.NoError(t, err)
	require.Equal(t, Builtin().Len()+1, extended.Len())

	require.Equal(t, "cloudflare-video", extended.Lookup("cloudflare").TagName)
	require.Equal(t, "https://example.com/hls.m3u8", extended.Lookup("hls").DefaultSourceURL)

	// The builtin catalog is untouched.
	require.Equal(t, "video", Builtin().Lookup("cloudflare").TagName)
}

func TestExtendRejectsTagCollision(t *testing.T) {
	t.Parallel()

	_, err := Builtin().Extend(Definition{Key: "other", TagName: "mux-video"})
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`media:
  - key: cloudflare
    title: Cloudflare
    tag: cloudflare-video
    src: https://watch.cloudflarestream.com/bfbd585059e33391d67b0f1f6ad7e49d
    package:
      default: cloudflare-video-element
      overrides:
        react: cloudflare-video-element/react
  - key: radio
    title: Radio
    tag: x-radio
    src: https://example.com/radio.mp3
`), 0o644))

	defs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.Equal(t, selection.MediaID("cloudflare"), defs[0].Key)
	override, ok := defs[0].Packages.Override(selection.FrameworkReact)
	require.True(t, ok)
	require.Equal(t, "cloudflare-video-element/react", override)
	require.True(t, defs[1].Native())
}

func TestParseRejectsUnknownOverrideFramework(t *testing.T) {
	t.Parallel()

	_, err := Parse("catalog.yaml", []byte(`media:
  - key: cloudflare
    title: Cloudflare
    tag: cloudflare-video
    src: https://example.com/cf
    package:
      default: cloudflare-video-element
      overrides:
        angular: cloudflare-video-element/angular
`))

	var validationErr *pserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseReportsYamlLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("catalog.yaml", []byte("media:\n  - key: [unterminated\n"))

	var parseErr *pserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Positive(t, parseErr.Line)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *pserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
