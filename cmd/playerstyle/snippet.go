package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/resolver"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/snippet"
	"github.com/alexisbeaulieu97/playerstyle/pkg/diff"
)

const (
	onlyInstall = "install"
	onlyEmbed   = "embed"
)

type snippetOptions struct {
	selection selectionFlags
	theme     string
	only      string
	check     string
	output    outputFlags
}

func newSnippetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &snippetOptions{}

	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Render install instructions and embed code",
		Example: `  playerstyle snippet --media hls --framework react
  playerstyle snippet --media mux --embed template --theme sleek
  playerstyle snippet --media youtube --only embed > player.html
  playerstyle snippet --media youtube --only embed --check player.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnippet(cmd, rootFlags, opts)
		},
	}

	addSelectionFlags(cmd, &opts.selection)
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Wrap the media element in a player.style theme")
	cmd.Flags().StringVar(&opts.only, "only", "", "Print only one snippet (install, embed)")
	cmd.Flags().StringVar(&opts.check, "check", "", "Compare the rendered output with a file and print a diff when it is out of date")
	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output snippets as JSON")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output snippets as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	cmd.MarkFlagsMutuallyExclusive("only", "json")
	cmd.MarkFlagsMutuallyExclusive("only", "yaml")
	cmd.MarkFlagsMutuallyExclusive("check", "json")
	cmd.MarkFlagsMutuallyExclusive("check", "yaml")

	return cmd
}

type snippetPayload struct {
	Selection  selection.Selection `json:"selection" yaml:"selection"`
	Theme      string              `json:"theme,omitempty" yaml:"theme,omitempty"`
	Resolution string              `json:"resolution" yaml:"resolution"`
	Package    string              `json:"package,omitempty" yaml:"package,omitempty"`
	Install    string              `json:"install" yaml:"install"`
	Embed      string              `json:"embed" yaml:"embed"`
}

func runSnippet(cmd *cobra.Command, rootFlags *rootFlags, opts *snippetOptions) error {
	only := strings.ToLower(strings.TrimSpace(opts.only))
	if only != "" && only != onlyInstall && only != onlyEmbed {
		return newCommandError("render snippet", "validating --only", fmt.Errorf("unknown snippet %q", opts.only), "Use --only install or --only embed.")
	}

	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	sel := selection.Parse(opts.selection.params(app.Settings.Defaults))
	def := app.Catalog.Lookup(sel.Media)
	req := snippet.Request{Media: def, Framework: sel.Framework, Embed: sel.Embed, Theme: opts.theme}
	res := resolver.Resolve(def, sel.Framework)

	app.Log.WithFields(map[string]any{
		"media":      string(def.Key),
		"framework":  string(sel.Framework),
		"embed":      string(sel.Embed),
		"resolution": res.Kind.String(),
	}).Debug("rendering snippet")

	out := cmd.OutOrStdout()

	if format := opts.output.format(); format != formatText {
		return writeStructured(out, format, snippetPayload{
			Selection:  selection.Selection{Media: def.Key, Framework: sel.Framework, Embed: sel.Embed},
			Theme:      strings.ToLower(strings.TrimSpace(opts.theme)),
			Resolution: res.Kind.String(),
			Package:    res.Package,
			Install:    app.Renderer.Install(req),
			Embed:      app.Renderer.Embed(req),
		})
	}

	var rendered string
	switch only {
	case onlyInstall:
		rendered = app.Renderer.Install(req)
	case onlyEmbed:
		rendered = app.Renderer.Embed(req)
	default:
		s := styler{}
		if opts.check == "" {
			s = newStyler(out)
		}
		rendered = fmt.Sprintf("%s\n%s\n%s\n%s", s.section("Install"), app.Renderer.Install(req), s.section("Embed"), app.Renderer.Embed(req))
	}

	if opts.check != "" {
		return checkSnippet(cmd, opts.check, rendered)
	}
	fmt.Fprint(out, rendered)
	return nil
}

var errSnippetDrift = errors.New("snippet is out of date")

// checkSnippet diffs the file at path against rendered.
func checkSnippet(cmd *cobra.Command, path, rendered string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check snippet", fmt.Sprintf("reading %s", path), err, "Write the snippet first with the same flags and no --check.")
	}

	patch := diff.Unified(rendered, string(data), "rendered", path)
	if patch == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), patch)
	return newCommandError("check snippet", fmt.Sprintf("comparing %s", path), errSnippetDrift, "Regenerate the file with the same flags and no --check.")
}
