package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reski",
	Short: "Reski - career development assistant",
	Long: `Reski is a terminal client for the Reski career service: chat with
the assistant, manage career goals and study tracks, and run a local
development server.`,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(configCmd)
}
