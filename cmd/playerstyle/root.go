package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "playerstyle",
		Short: "playerstyle renders install and embed snippets for player.style themes",
		Long: `playerstyle resolves a media element, a framework and an embed method into
ready-to-paste install instructions and usage code, optionally wrapped in a
player.style theme.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $HOME/.playerstyle/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.contentDir, "content-dir", "", "Directory with themes/, frameworks/ and players/ entries")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "YAML file with additional media element definitions")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newSnippetCmd(flags))
	cmd.AddCommand(newMediaCmd(flags))
	cmd.AddCommand(newFrameworksCmd())
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
