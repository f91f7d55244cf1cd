package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

var allFrameworks = []selection.FrameworkID{
	selection.FrameworkHTML,
	selection.FrameworkJS,
	selection.FrameworkReact,
	selection.FrameworkVue,
	selection.FrameworkLit,
	selection.FrameworkSvelte,
	"none",
	"angular",
}

func TestNativeElementsNeverResolveToPackage(t *testing.T) {
	t.Parallel()

	for _, id := range []selection.MediaID{"video", "audio"} {
		def := media.Builtin().Lookup(id)
		for _, fw := range allFrameworks {
			res := Resolve(def, fw)
			require.Equal(t, NotApplicable, res.Kind, "media=%s framework=%s", id, fw)
			require.False(t, res.HasPackage())
			require.Empty(t, res.Package)
		}
		require.Equal(t, NotApplicable, DefaultPackage(def).Kind)
	}
}

func TestUnknownFrameworkFallsBackToDefault(t *testing.T) {
	t.Parallel()

	for _, def := range media.Builtin().Definitions() {
		if def.Native() {
			continue
		}
		res := Resolve(def, "angular")
		require.Equal(t, FallbackDefault, res.Kind)
		require.Equal(t, def.Packages.Default, res.Package)
		require.Equal(t, DefaultPackage(def), res)
	}
}

func TestResolveOverridesAndFallbacks(t *testing.T) {
	t.Parallel()

	mux := media.Builtin().Lookup("mux")

	cases := []struct {
		framework selection.FrameworkID
		kind      Kind
		pkg       string
	}{
		{selection.FrameworkHTML, FallbackDefault, "@mux/mux-video"},
		{selection.FrameworkJS, FallbackDefault, "@mux/mux-video"},
		{selection.FrameworkReact, Found, "@mux/mux-video-react"},
		{selection.FrameworkVue, FallbackDefault, "@mux/mux-video"},
		{selection.FrameworkLit, FallbackDefault, "@mux/mux-video"},
		{selection.FrameworkSvelte, FallbackDefault, "@mux/mux-video"},
	}

	for _, tc := range cases {
		res := Resolve(mux, tc.framework)
		require.Equal(t, tc.kind, res.Kind, "framework=%s", tc.framework)
		require.Equal(t, tc.pkg, res.Package, "framework=%s", tc.framework)
		require.True(t, res.HasPackage())
	}
}

func TestExplicitHTMLOverrideWins(t *testing.T) {
	t.Parallel()

	def := media.Definition{
		Key:     "custom",
		TagName: "custom-video",
		Packages: &media.PackageMap{
			Default:   "custom-video-element",
			Overrides: map[selection.FrameworkID]string{selection.FrameworkHTML: "custom-video-element/html"},
		},
	}

	require.Equal(t, Resolution{Kind: Found, Package: "custom-video-element/html"}, Resolve(def, selection.FrameworkHTML))
	require.Equal(t, Resolution{Kind: FallbackDefault, Package: "custom-video-element"}, Resolve(def, selection.FrameworkJS))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "found", Found.String())
	require.Equal(t, "fallback-default", FallbackDefault.String())
	require.Equal(t, "not-applicable", NotApplicable.String())
}
