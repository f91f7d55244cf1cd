package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/resolver"
	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

func newMediaCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Inspect the media element catalog",
	}

	cmd.AddCommand(newMediaListCmd(rootFlags))
	cmd.AddCommand(newMediaShowCmd(rootFlags))

	return cmd
}

type mediaListOptions struct {
	output outputFlags
}

func newMediaListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &mediaListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List media elements, default first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMediaList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output in YAML format (loadable with --catalog)")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

type mediaListPayload struct {
	Default selection.MediaID  `json:"default" yaml:"default"`
	Count   int                `json:"count" yaml:"count"`
	Media   []media.Definition `json:"media" yaml:"media"`
}

func runMediaList(cmd *cobra.Command, rootFlags *rootFlags, opts *mediaListOptions) error {
	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	defs := app.Catalog.Definitions()
	if format := opts.output.format(); format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, mediaListPayload{
			Default: app.Catalog.DefaultKey(),
			Count:   len(defs),
			Media:   defs,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tTITLE\tTAG\tPACKAGE")
	for _, def := range defs {
		pkg := "(native)"
		if def.Packages != nil {
			pkg = def.Packages.Default
		}
		fmt.Fprintf(writer, "%s\t%s\t<%s>\t%s\n", def.Key, def.Title, def.TagName, pkg)
	}
	return writer.Flush()
}

type mediaShowOptions struct {
	output outputFlags
}

func newMediaShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &mediaShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show how a media element resolves for every framework",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMediaShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

type frameworkResolution struct {
	Framework  selection.FrameworkID `json:"framework" yaml:"framework"`
	Resolution string                `json:"resolution" yaml:"resolution"`
	Package    string                `json:"package,omitempty" yaml:"package,omitempty"`
}

type mediaShowPayload struct {
	Media       media.Definition      `json:"media" yaml:"media"`
	Resolutions []frameworkResolution `json:"resolutions" yaml:"resolutions"`
}

func runMediaShow(cmd *cobra.Command, rootFlags *rootFlags, key string, opts *mediaShowOptions) error {
	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	def, ok := app.Catalog.Get(selection.ParseMedia(key))
	if !ok {
		err := pserrors.NewNotFoundError("media", key)
		return newCommandError("show media", fmt.Sprintf("looking up media %q", key), err, "Run 'playerstyle media list' to see the catalog.")
	}

	payload := mediaShowPayload{Media: def}
	for _, opt := range selection.Frameworks() {
		res := resolver.Resolve(def, opt.Value)
		payload.Resolutions = append(payload.Resolutions, frameworkResolution{
			Framework:  opt.Value,
			Resolution: res.Kind.String(),
			Package:    res.Package,
		})
	}

	if format := opts.output.format(); format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, payload)
	}

	out := cmd.OutOrStdout()
	s := newStyler(out)
	fmt.Fprintln(out, s.heading(def.Title))
	fmt.Fprintf(out, "Tag:    <%s>\n", def.TagName)
	fmt.Fprintf(out, "Source: %s\n\n", def.DefaultSourceURL)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FRAMEWORK\tRESOLUTION\tPACKAGE")
	for _, r := range payload.Resolutions {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", r.Framework, r.Resolution, valueOrFallback(r.Package, "-"))
	}
	return writer.Flush()
}
