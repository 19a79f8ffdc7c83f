package cafe

import (
	"context"
	"fmt"
	"time"

	"cafe-bot/internal/common/httpx"
	"cafe-bot/internal/common/idgen"
	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/middleware"
	"cafe-bot/internal/config"
	"cafe-bot/internal/connections/database"
	"cafe-bot/internal/connections/rabbitmq"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/handlers"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/repository"
	"cafe-bot/internal/microservices/cafe/service"
)

// Run собирает сервис и блокируется до отмены ctx.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	loc, err := cfg.Brand.Location()
	if err != nil {
		return fmt.Errorf("brand time zone: %w", err)
	}

	backend, closeBackend, err := OpenBackend(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeBackend()

	// Initialize store and service
	store := repository.NewMemoryStore()
	svc := service.New(store, backend, idgen.New(), time.Now, cfg.Brand.ClientPrefix, lg)
	h := handlers.New(svc, narrative.New(cfg.Brand.Name, loc), time.Now, lg.Named("http"))

	limiter := middleware.NewRateLimiter(cfg.Server.RatePerSecond, cfg.Server.RateBurst, lg)
	router := handlers.Router(h,
		middleware.Recover(lg, handlers.Internal),
		middleware.WithRequestID(lg.Named("access")),
		middleware.Metrics,
		limiter.Handler,
	)

	srv := httpx.New(cfg.Server, router)
	lg.Info("listening", map[string]any{
		"addr":       srv.Addr,
		"downstream": cfg.Downstream.Mode,
		"brand":      cfg.Brand.Name,
	})
	return srv.Run(ctx)
}

// OpenBackend connects whatever downstream the config names. The returned
// func releases its connections.
func OpenBackend(ctx context.Context, cfg *config.Config, lg *logger.Logger) (downstream.Backend, func(), error) {
	sim := downstream.NewSimulator(cfg.Downstream, lg.Named("simulator"))

	switch cfg.Downstream.Mode {
	case config.DownstreamPostgres:
		db, err := database.ConnectDB(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Database})
		return downstream.NewPostgres(db), func() { _ = db.Close() }, nil

	case config.DownstreamRabbitMQ:
		client, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			return nil, nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		if err := client.DeclareTopology(cfg.RabbitMQ.Exchange); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("declare topology: %w", err)
		}
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host, "exchange": cfg.RabbitMQ.Exchange})
		// Поиск клиентов шине недоступен, отвечает симулятор.
		return downstream.NewBus(client, cfg.RabbitMQ.Exchange, sim), client.Close, nil

	default:
		return sim, func() {}, nil
	}
}
