package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/notificator"
)

func notifyCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Print staff notifications for events published to RabbitMQ",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.RabbitMQ.Host == "" {
				return errors.New("rabbitmq host is not configured")
			}

			lg := logger.New("notificator")
			lg.SetLevel(cfg.Log.Level)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := notificator.Start(ctx, cfg.RabbitMQ, lg); err != nil {
				lg.Error("fatal", err, nil)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")
	return cmd
}
