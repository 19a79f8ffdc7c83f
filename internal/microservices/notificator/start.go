package notificator

import (
	"context"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/config"
	"cafe-bot/internal/connections/rabbitmq"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/notificator/service"
)

const (
	Queue    = "cafe.notifications"
	Consumer = "notificator"
)

// Start слушает события кафе из шины и уведомляет персонал, пока жив ctx.
func Start(ctx context.Context, cfg config.RabbitMQConfig, lg *logger.Logger) error {
	rmqClient, err := rabbitmq.Dial(cfg)
	if err != nil {
		return err
	}
	defer rmqClient.Close()

	if err := rmqClient.DeclareTopology(cfg.Exchange); err != nil {
		return err
	}
	if err := rmqClient.BindQueue(Queue, cfg.Exchange, downstream.RoutingKey("*")); err != nil {
		return err
	}
	deliveries, err := rmqClient.Consume(Queue, Consumer, 10)
	if err != nil {
		return err
	}

	lg.Info("notificator_started", map[string]any{"queue": Queue, "exchange": cfg.Exchange})
	return service.NewNotificatorService(lg, nil).Notify(ctx, deliveries)
}
