package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/database"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/rag"
	"github.com/zhubert/ragchat/internal/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the collaborator HTTP server",
	Long: `Runs the HTTP API the TUI talks to. Conversations are stored in sqlite
or postgres (DATABASE_URL) and replies come from the webhook at RAG_WEBHOOK_URL.

Configuration is read from the optional --config YAML file, then .env, then
the environment.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer(serveConfigPath)
	if err != nil {
		return fmt.Errorf("error loading server config: %w", err)
	}

	log := logger.InitServer(os.Stderr, cfg.Debug || debugMode)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database", "error", err)
		}
	}()

	srv := server.New(cfg, database.NewRepo(db), rag.New(cfg.WebhookURL, cfg.WebhookTimeout), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
