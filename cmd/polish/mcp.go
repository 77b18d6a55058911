package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Polish engine as an MCP Server over stdio, so AI agents can
call expression analysis and tree rendering as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		engine := polish.New(polish.WithLogger(logger))
		srv := mcp.NewServer(engine)

		slog.Info("Starting Polish MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
