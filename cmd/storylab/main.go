package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	noColor     bool
	profileFlag string
)

var rootCmd = &cobra.Command{
	Use:     "storylab",
	Short:   "StoryLab — interactive creative-writing lessons",
	Version: version,
	Long: `StoryLab teaches story development through interactive lessons with
an AI writing coach, per-profile progress tracking and printable
guides, workbooks, reference cards and certificates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "profile id to act as (default: local)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
