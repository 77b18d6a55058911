package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "polish",
	Short: "Polish is an arithmetic expression notation analyzer",
	Long: `Polish accepts an arithmetic expression in infix, prefix or postfix
notation, detects which one it is, builds the binary expression tree, and
re-renders the expression in all three notations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
