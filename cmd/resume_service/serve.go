package main

import (
	"fmt"
	"os"

	"github.com/primeirocv/resume-builder/internal/config"
	"github.com/primeirocv/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for accounts, resumes, scoring, plans, and AI assistance.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Flags and environment take precedence; a config file fills in what's missing
	fileCfg := config.Config{}
	if serveConfigFile != "" {
		loaded, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = *loaded
	}

	envCfg := config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("GEMINI_MODEL"),
	}
	if cmd.Flags().Changed("port") {
		envCfg.Port = servePort
	}
	merged := envCfg.MergeWithDefaults(fileCfg)
	if merged.Port == 0 {
		merged.Port = servePort
	}

	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Port:        merged.Port,
		DatabaseURL: merged.DatabaseURL,
		// Optional: without a key the server runs with AI endpoints disabled
		GeminiAPIKey: merged.APIKey,
		GeminiModel:  merged.Model,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
