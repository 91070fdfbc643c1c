package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reskiapp/reski/internal/config"
	"github.com/reskiapp/reski/internal/server"
	"github.com/reskiapp/reski/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Reski dev server",
	Long:  `Start a local Reski HTTP server backed by SQLite, useful for development without the hosted API.`,
	RunE:  runServe,
}

var serveConfigPath string

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file (default: ~/.reski/config.yaml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfgPath := serveConfigPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if cfg.Server.APIKey == "" {
		log.Printf("warning: API key not configured, clients connect without authentication")
	}

	dbDir := filepath.Dir(cfg.Server.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	s, err := store.New(cfg.Server.Path)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	defer s.Close()

	srv := server.New(server.Config{
		Port:   cfg.Server.Port,
		APIKey: cfg.Server.APIKey,
	}, s)

	log.Printf("Starting server on port %d", cfg.Server.Port)
	return srv.Run()
}
