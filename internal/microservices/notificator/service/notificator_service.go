package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Notification is what the staff sees for one event from the bus.
type Notification struct {
	Kind    dao.Kind
	ID      string
	Summary string
}

type NotificatorService struct {
	lg   *logger.Logger
	sink func(Notification)
}

// NewNotificatorService logs every notification; sink, if set, also gets it.
func NewNotificatorService(lg *logger.Logger, sink func(Notification)) *NotificatorService {
	return &NotificatorService{lg: lg, sink: sink}
}

// Notify drains deliveries until ctx is done or the channel closes.
func (ns *NotificatorService) Notify(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			ns.handle(msg)
		}
	}
}

func (ns *NotificatorService) handle(msg amqp.Delivery) {
	kind, _ := msg.Headers["x-kind"].(string)
	n, err := Summarise(dao.Kind(kind), msg.Body)
	if err != nil {
		// битое сообщение не переотправляем
		ns.lg.Error("notification_dropped", err, map[string]any{"routing_key": msg.RoutingKey, "correlation_id": msg.CorrelationId})
		_ = msg.Nack(false, false)
		return
	}
	ns.lg.Info("staff_notification", map[string]any{"kind": n.Kind, "id": n.ID, "summary": n.Summary})
	if ns.sink != nil {
		ns.sink(n)
	}
	_ = msg.Ack(false)
}

// Summarise renders one event body as a single staff-facing line.
func Summarise(kind dao.Kind, body []byte) (Notification, error) {
	switch kind {
	case dao.KindOrder:
		var o dao.Order
		if err := json.Unmarshal(body, &o); err != nil {
			return Notification{}, fmt.Errorf("decode order: %w", err)
		}
		line := fmt.Sprintf("New order %s for %s: %s, %s, sugar %g%%, ice %s", o.OrderID, o.ClientName, o.TeaType, o.Size, o.SugarPercentage, o.IceLevel)
		if len(o.Toppings) > 0 {
			line += ", toppings " + strings.Join(o.Toppings, "+")
		}
		line += fmt.Sprintf(", $%.2f, ready %s", o.TotalPrice, o.EstimatedReadyTime.Format("15:04"))
		return Notification{Kind: kind, ID: o.OrderID, Summary: line}, nil

	case dao.KindFeedback:
		var f dao.Feedback
		if err := json.Unmarshal(body, &f); err != nil {
			return Notification{}, fmt.Errorf("decode feedback: %w", err)
		}
		line := fmt.Sprintf("Complaint %s from %s [%s]: %s", f.ID, f.ClientName, f.Category, f.Feedback)
		if f.Rating != nil {
			line += fmt.Sprintf(" (rating %v)", f.Rating)
		}
		return Notification{Kind: kind, ID: f.ID, Summary: line}, nil

	case dao.KindClient:
		var c dao.Client
		if err := json.Unmarshal(body, &c); err != nil {
			return Notification{}, fmt.Errorf("decode client: %w", err)
		}
		return Notification{Kind: kind, ID: c.ClientID, Summary: fmt.Sprintf("New member %s: %s (%s)", c.ClientID, c.FullName, c.Phone)}, nil

	default:
		return Notification{}, fmt.Errorf("unknown event kind %q", kind)
	}
}
