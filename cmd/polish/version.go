package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/polish"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of polish",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("polish version %s\n", strings.TrimSpace(polish.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
