package main

import (
	"context"
	"errors"
	"io/fs"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/config"
	"cafe-bot/internal/microservices/cafe"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		downstream string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

Examples:
  cafe-bot serve
  cafe-bot serve --config deploy/config.example.yaml --port 8080
  cafe-bot serve --downstream postgres`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := serveConfig(cmd, configPath, port, downstream)
			if err != nil {
				return err
			}

			lg := logger.New("cafe-bot")
			lg.SetLevel(cfg.Log.Level)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			lg.Info("service_started", map[string]any{"port": cfg.Server.Port, "downstream": cfg.Downstream.Mode})
			if err := cafe.Run(ctx, cfg, lg); err != nil {
				lg.Error("fatal", err, nil)
				return err
			}
			lg.Info("service_stopped", nil)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search config.yaml, deploy/config.example.yaml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port, overrides config")
	cmd.Flags().StringVar(&downstream, "downstream", "", "simulator | postgres | rabbitmq, overrides config")
	return cmd
}

// serveConfig applies the flags that were set on top of the loaded config
// and only then validates the result.
func serveConfig(cmd *cobra.Command, path string, port int, downstream string) (*config.Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("downstream") {
		cfg.Downstream.Mode = downstream
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig finds and reads the config without validating it; callers
// validate after applying their flag overrides.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		path = found
	}
	return config.LoadConfig(path)
}
