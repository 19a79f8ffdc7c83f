// Package downstream is the boundary between the cafe service and whatever
// actually keeps its records: a simulator by default, or Postgres / RabbitMQ
// when configured.
package downstream

import (
	"context"
	"time"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Port accepts an assembled record. false means the downstream declined it;
// an error means the call itself failed.
type Port interface {
	Submit(ctx context.Context, kind dao.Kind, record any) (bool, error)
}

// Directory answers whether a phone number belongs to a registered client.
type Directory interface {
	IsRegistered(ctx context.Context, phone string) (bool, error)
}

// Backend is a Port that can also look clients up.
type Backend interface {
	Port
	Directory
}

// Pinger is implemented by backends that hold a live connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

const (
	StatusOK    = "ok"
	pingTimeout = 2 * time.Second
)

// Status reports StatusOK, or why p's connection is unusable. Backends
// without a connection are always ok.
func Status(ctx context.Context, p Port) string {
	pinger, ok := p.(Pinger)
	if !ok {
		return StatusOK
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		return "unavailable: " + err.Error()
	}
	return StatusOK
}

func recordID(record any) string {
	switch r := record.(type) {
	case dao.Client:
		return r.ClientID
	case dao.Order:
		return r.OrderID
	case dao.Feedback:
		return r.ID
	default:
		return ""
	}
}
