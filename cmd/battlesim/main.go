// Command battlesim runs tactical battles headlessly: scenario files in,
// outcome records out, with optional snapshot persistence for resume.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "battlesim",
		Short: "Headless tactical battle runner",
		Long:  "battlesim runs hex-grid tactical battles AI-vs-AI from scenario files or generated encounters.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
	}
	root.PersistentFlags().Bool("verbose", false, "log debugging information")

	root.AddCommand(cmdRun())
	root.AddCommand(cmdResume())
	root.AddCommand(cmdGenerate())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
