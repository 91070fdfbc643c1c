package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/reskiapp/reski/internal/config"
	"github.com/reskiapp/reski/internal/server"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch chat traffic on the dev server",
	Long:  `Connect to a running Reski dev server and print every chat exchange as it happens.`,
	RunE:  runMonitor,
}

var monitorConfigPath string

func init() {
	monitorCmd.Flags().StringVarP(&monitorConfigPath, "config", "c", "", "path to config file (default: ~/.reski/config.yaml)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfgPath := monitorConfigPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("ws://localhost:%d/monitor", cfg.Server.Port)
	header := http.Header{}
	if cfg.Server.APIKey != "" {
		header.Set("Authorization", "Bearer "+cfg.Server.APIKey)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", url, err)
	}
	defer conn.Close()

	log.Printf("watching %s", url)
	for {
		var ex server.Exchange
		if err := conn.ReadJSON(&ex); err != nil {
			return fmt.Errorf("read exchange: %w", err)
		}
		at := time.Unix(ex.At, 0).Format("15:04:05")
		fmt.Printf("[%s] > %s\n[%s] < %s\n", at, ex.Mensagem, at, ex.Resposta)
	}
}
