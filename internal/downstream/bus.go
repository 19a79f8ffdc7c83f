package downstream

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Publisher is satisfied by *rabbitmq.Client.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte, headers amqp.Table, correlationID string) error
}

// Bus hands records to the broker as persistent JSON events. A broker ack
// counts as accepted. Lookups go to the fallback directory.
type Bus struct {
	pub      Publisher
	exchange string
	lookup   Directory
}

func NewBus(pub Publisher, exchange string, lookup Directory) *Bus {
	return &Bus{pub: pub, exchange: exchange, lookup: lookup}
}

func RoutingKey(kind dao.Kind) string {
	return fmt.Sprintf("cafe.%s.created", kind)
}

func (b *Bus) Submit(ctx context.Context, kind dao.Kind, record any) (bool, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s message: %w", kind, err)
	}
	headers := amqp.Table{
		"x-source": "cafe-service",
		"x-kind":   string(kind),
	}
	if err := b.pub.Publish(ctx, b.exchange, RoutingKey(kind), body, headers, recordID(record)); err != nil {
		return false, fmt.Errorf("failed to publish %s: %w", kind, err)
	}
	return true, nil
}

// Ping checks the broker connection when the publisher can tell.
func (b *Bus) Ping(context.Context) error {
	if c, ok := b.pub.(interface{ Ping() error }); ok {
		return c.Ping()
	}
	return nil
}

func (b *Bus) IsRegistered(ctx context.Context, phone string) (bool, error) {
	return b.lookup.IsRegistered(ctx, phone)
}
