package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/config"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

type selectionFlags struct {
	media     string
	framework string
	embed     string
}

func addSelectionFlags(cmd *cobra.Command, flags *selectionFlags) {
	cmd.Flags().StringVar(&flags.media, "media", "", "Media element key (video, hls, youtube, ...)")
	cmd.Flags().StringVar(&flags.framework, "framework", "", "Framework (html, js, react, vue, lit, svelte)")
	cmd.Flags().StringVar(&flags.embed, "embed", "", "Embed method (packaged, template)")
}

// params builds request parameters from the flags, falling back to the
// configured defaults for flags left empty.
func (f selectionFlags) params(defaults config.Defaults) selection.Params {
	return selection.FromFlags(
		firstNonEmpty(f.media, defaults.Media),
		firstNonEmpty(f.framework, defaults.Framework),
		firstNonEmpty(f.embed, defaults.Embed),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
