// Package main is the entry point for the adventure API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adventure-api",
	Short: "Adventure API Server",
	Long:  `Adventure API provides an HTTP interface for managing text-adventure game state, player progress, and party configurations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
