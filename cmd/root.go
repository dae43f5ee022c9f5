package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:                "sub000",
	Short:              "sub000 is an idle entry point",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {},
}

// execute runs rootCmd with args. cobra's hidden completion request
// command writes to the command's streams, so both are discarded, and it
// stays attached once called, so rootCmd is left without subcommands.
func execute(args []string) error {
	defer func() {
		for _, c := range rootCmd.Commands() {
			rootCmd.RemoveCommand(c)
		}
	}()
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// Execute executes the root command
func Execute() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
