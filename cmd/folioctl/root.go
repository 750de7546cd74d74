package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folioctl",
	Short: "FolioBoard server and administration tool",
	Long:  `folioctl runs the FolioBoard server and manages its database and users.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
