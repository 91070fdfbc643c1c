package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reskiapp/reski/internal/assistant"
	"github.com/reskiapp/reski/internal/chat"
	"github.com/reskiapp/reski/internal/config"
	"github.com/reskiapp/reski/internal/identity"
	"github.com/reskiapp/reski/internal/kv"
	"github.com/reskiapp/reski/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the Reski assistant",
	Long:  `Open the assistant chat screen. Sessions are kept per user and persist across runs.`,
	RunE:  runChat,
}

var chatConfigPath string

func init() {
	chatCmd.Flags().StringVarP(&chatConfigPath, "config", "c", "", "path to config file (default: ~/.reski/config.yaml)")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfgPath := chatConfigPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0755); err != nil {
		return err
	}

	kvStore, err := kv.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	user := identity.Resolve(cfg.Identity.UID, cfg.Identity.Email)
	store := chat.Open(context.Background(), kvStore, user)

	ctrl := assistant.NewController(store, assistant.NewClient(cfg.API.BaseURL, cfg.API.Token))
	defer ctrl.Close()

	return tui.Run(store, ctrl)
}
