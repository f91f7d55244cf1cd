package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/logger"
	"github.com/alexisbeaulieu97/playerstyle/internal/themepage"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

type themeOptions struct {
	selection selectionFlags
	output    outputFlags
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme <slug>",
		Short: "Show a theme page: title, description and snippets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, args[0], opts)
		},
	}

	addSelectionFlags(cmd, &opts.selection)
	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output the page as JSON")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output the page as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, slug string, opts *themeOptions) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return newCommandError("show theme", "validating theme slug", errors.New("theme slug cannot be empty"), "Run 'playerstyle themes' to list available themes.")
	}

	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	ctx := logger.WithContext(cmd.Context(), app.Log.WithFields(map[string]any{"command": cmd.Name()}))
	page, err := app.Pages.Resolve(ctx, slug, opts.selection.params(app.Settings.Defaults))
	if err != nil {
		if pserrors.IsNotFound(err) {
			return newCommandError("show theme", fmt.Sprintf("looking up theme %q", slug), err, notFoundSuggestion(err))
		}
		return newCommandError("show theme", fmt.Sprintf("resolving theme %q", slug), err, "Check the content directory and try again.")
	}

	if format := opts.output.format(); format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, page)
	}
	renderThemePage(cmd, page)
	return nil
}

func renderThemePage(cmd *cobra.Command, page themepage.Page) {
	out := cmd.OutOrStdout()
	s := newStyler(out)

	fmt.Fprintln(out, s.heading(page.Title))
	if page.Description != "" {
		fmt.Fprintln(out, page.Description)
	}
	if page.Author != "" {
		fmt.Fprintln(out, s.muted("by "+page.Author))
	}
	fmt.Fprintln(out, s.muted(page.Selection.Framework.Title()+" / "+page.Selection.Embed.Title()))

	fmt.Fprintf(out, "\n%s\n%s", s.section("Install"), page.Install)
	fmt.Fprintf(out, "\n%s\n%s", s.section("Embed"), page.Embed)
}
