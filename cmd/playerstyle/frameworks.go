package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
)

type frameworksOptions struct {
	output outputFlags
}

func newFrameworksCmd() *cobra.Command {
	opts := &frameworksOptions{}

	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List supported frameworks and embed methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrameworks(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.output.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.output.yaml, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

type optionPayload struct {
	Value   string `json:"value" yaml:"value"`
	Title   string `json:"title" yaml:"title"`
	Default bool   `json:"default" yaml:"default"`
}

type frameworksPayload struct {
	Frameworks   []optionPayload `json:"frameworks" yaml:"frameworks"`
	EmbedMethods []optionPayload `json:"embed_methods" yaml:"embed_methods"`
}

func runFrameworks(cmd *cobra.Command, opts *frameworksOptions) error {
	defaults := selection.Default()

	var payload frameworksPayload
	for _, opt := range selection.Frameworks() {
		payload.Frameworks = append(payload.Frameworks, optionPayload{
			Value: string(opt.Value), Title: opt.Title, Default: opt.Value == defaults.Framework,
		})
	}
	for _, opt := range selection.EmbedMethods() {
		payload.EmbedMethods = append(payload.EmbedMethods, optionPayload{
			Value: string(opt.Value), Title: opt.Title, Default: opt.Value == defaults.Embed,
		})
	}

	if format := opts.output.format(); format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KIND\tVALUE\tTITLE\tDEFAULT")
	for _, opt := range payload.Frameworks {
		fmt.Fprintf(writer, "framework\t%s\t%s\t%s\n", opt.Value, opt.Title, defaultMark(opt.Default))
	}
	for _, opt := range payload.EmbedMethods {
		fmt.Fprintf(writer, "embed\t%s\t%s\t%s\n", opt.Value, opt.Title, defaultMark(opt.Default))
	}
	return writer.Flush()
}

func defaultMark(isDefault bool) string {
	if isDefault {
		return "yes"
	}
	return ""
}
