package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/content"
)

type themesOptions struct {
	output outputFlags
}

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

type themesPayload struct {
	Count  int             `json:"count" yaml:"count"`
	Themes []content.Entry `json:"themes" yaml:"themes"`
}

func runThemes(cmd *cobra.Command, rootFlags *rootFlags, opts *themesOptions) error {
	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	themes, err := app.Content.List(cmd.Context(), content.Themes)
	if err != nil {
		return newCommandError("list themes", "reading theme entries", err, "Check the content directory and try again.")
	}

	if format := opts.output.format(); format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, themesPayload{Count: len(themes), Themes: themes})
	}

	if len(themes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No themes found.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SLUG\tTITLE\tAUTHOR\tDESCRIPTION")
	for _, theme := range themes {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			theme.Slug,
			theme.Title,
			valueOrFallback(theme.Author, "-"),
			valueOrFallback(theme.Description, "-"),
		)
	}
	return writer.Flush()
}
