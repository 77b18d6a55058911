package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/internal/cli"
	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [expression]",
	Short: "Analyze a single expression",
	Long: `Analyzes one expression passed as an argument and prints the detected
notation, the three renderings, and the expression tree diagram.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		engineOpts := []polish.Option{}
		if debug {
			engineOpts = append(engineOpts, polish.WithLogger(cli.NewLogger(debug)))
		}
		engine := polish.New(engineOpts...)

		// Join the args so shell-split expressions like "a + b" still work.
		res, err := engine.Analyze(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(cli.FormatPlain(res))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
