package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRun bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "sortdir <folder-path>",
		Short: "Sort a directory's files into category subfolders",
		Long: "sortdir scans a single directory (non-recursive) and copies each file " +
			"into a category subfolder (Images, Documents, Videos, Audio, Archives, " +
			"Code, Others) based on its extension. Originals are never moved or " +
			"modified. Use --dry-run to preview the result.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("missing required <folder-path> argument")
			}
			return runOrganize(cmd, ctx, args[0], dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report intended copies without touching the filesystem")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
