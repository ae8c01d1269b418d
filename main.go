package main

import (
	"os"

	"github.com/ms-henglu/valkit/cmd"
	"github.com/ms-henglu/valkit/internal/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "valkit",
		Short:         "Copy, compare and group structured documents " + version,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(cmd.NewCopyCmd())
	rootCmd.AddCommand(cmd.NewDiffCmd())
	rootCmd.AddCommand(cmd.NewGroupCmd())
	rootCmd.AddCommand(cmd.NewFilterCountriesCmd())
	rootCmd.AddCommand(cmd.NewSlugCmd())
	rootCmd.AddCommand(cmd.NewCapitalizeCmd())
	rootCmd.AddCommand(cmd.NewYouTubeIDCmd())
	rootCmd.AddCommand(cmd.NewDateCmd())
	rootCmd.AddCommand(cmd.NewCleanCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
