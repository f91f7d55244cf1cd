package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/tui"
)

type pickOptions struct {
	selection selectionFlags
	theme     string
}

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick media, framework and embed method interactively",
		Long: `Launch an interactive picker with a live preview of the snippets. On enter
the selected snippets are printed together with the equivalent
'playerstyle snippet' invocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, rootFlags, opts)
		},
	}

	addSelectionFlags(cmd, &opts.selection)
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Wrap the media element in a player.style theme")

	return cmd
}

func runPick(cmd *cobra.Command, rootFlags *rootFlags, opts *pickOptions) error {
	if !supportsUnicode(cmd.InOrStdin()) {
		return newCommandError("pick snippet", "starting the picker", errors.New("stdin is not a terminal"), "Use 'playerstyle snippet' with --media, --framework and --embed instead.")
	}

	app, err := rootFlags.appContext(cmd)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Catalog:  app.Catalog,
		Renderer: app.Renderer,
		Theme:    opts.theme,
		Initial:  selection.Parse(opts.selection.params(app.Settings.Defaults)),
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
	)
	final, err := program.Run()
	if err != nil {
		return newCommandError("pick snippet", "running the picker", err, "Run the command in an interactive terminal.")
	}

	picked, ok := final.(tui.Model)
	if !ok || !picked.Confirmed() {
		app.Log.Debug("picker cancelled")
		return nil
	}

	req := picked.Request()
	out := cmd.OutOrStdout()
	s := newStyler(out)
	fmt.Fprintf(out, "%s\n%s", s.section("Install"), app.Renderer.Install(req))
	fmt.Fprintf(out, "\n%s\n%s", s.section("Embed"), app.Renderer.Embed(req))
	fmt.Fprintf(out, "\n%s\n", s.muted(snippetInvocation(picked.Selection(), opts.theme)))
	return nil
}

// snippetInvocation is the non-interactive command producing the same output.
func snippetInvocation(sel selection.Selection, theme string) string {
	params := sel.Values()
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := []string{"playerstyle snippet"}
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("--%s %s", key, params[key][0]))
	}
	if theme = strings.TrimSpace(theme); theme != "" {
		parts = append(parts, "--theme "+theme)
	}
	return strings.Join(parts, " ")
}
