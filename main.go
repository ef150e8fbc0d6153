package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsingjyujing/vestigo-analyzer/cmd"
	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

var logger = utils.Logger

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vestigo-analyzer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	var verbose, jsonLogs bool
	rootCmd := &cobra.Command{
		Use:          "vestigo-analyzer",
		Short:        "vestigo-analyzer is the text analysis front end of a search engine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				utils.SetVerbose()
			}
			if jsonLogs {
				utils.SetJSONLogs()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log in JSON")
	commands := []*cobra.Command{
		cmd.NewAnalyzeCommand(),
		cmd.NewDetectCommand(),
		cmd.NewPipelinesCommand(),
		versionCommand,
	}
	for _, command := range commands {
		rootCmd.AddCommand(command)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
