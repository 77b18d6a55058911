package main

import (
	"fmt"
	"os"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/pkg/batch"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze a batch of expressions from a file",
	Long: `Reads an expressions file (YAML or JSON) and analyzes every entry,
reporting per-entry status. Exits non-zero if any entry fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")

		entries, err := batch.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Printf("No expressions found in %s\n", path)
			return
		}

		engine := polish.New()
		failed := 0

		for _, entry := range entries {
			name := entry.Name
			if name == "" {
				name = entry.Expr
			}

			res, err := engine.Analyze(entry.Expr)
			if err != nil {
				failed++
				fmt.Printf("FAIL  %-24s %v\n", name, err)
				continue
			}
			fmt.Printf("OK    %-24s %s -> %s\n", name, res.Notation, res.Postfix)
		}

		fmt.Printf("\n%d expressions, %d failed\n", len(entries), failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("file", "f", "expressions.yaml", "Path to the expressions file (YAML or JSON)")
}
