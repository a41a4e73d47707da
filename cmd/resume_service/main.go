// Package main provides the entry point for the resume builder HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_service",
	Short: "Resume Builder HTTP API Server",
	Long:  "Resume Builder serves a REST API for building, scoring, and optimizing resumes, with AI writing assistance and plan-based usage limits.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
