package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/internal/presentation/graph"
	"github.com/aretw0/polish/internal/presentation/treeview"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [expression]",
	Short: "Export the expression tree visualization",
	Long: `Builds the expression tree and outputs it either as an ASCII diagram
or as a Mermaid graph (graph TD) for embedding in documentation.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		engine := polish.New()
		res, err := engine.Analyze(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch format {
		case "mermaid":
			fmt.Print(graph.GenerateMermaid(res.Root))
		case "ascii":
			fmt.Print(treeview.Render(res.Root))
		default:
			fmt.Fprintf(os.Stderr, "Unknown format: %s. Supported: ascii, mermaid\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("format", "ascii", "Output format: 'ascii' or 'mermaid'")
}
