package rabbitmq

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"cafe-bot/internal/config"
)

type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel

	acks <-chan amqp.Confirmation // для publisher confirms
	mu   sync.Mutex               // сериализуем Publish при использовании confirms
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func URL(cfg config.RabbitMQConfig) string {
	vhost := cfg.VHost
	if vhost == "" || vhost == "/" {
		vhost = ""
	}
	scheme := "amqp"
	if cfg.UseTLS {
		scheme = "amqps"
	}
	return fmt.Sprintf("%s://%s:%s@%s:%d/%s", scheme, cfg.User, cfg.Password, cfg.Host, cfg.Port, vhost)
}

func Dial(cfg config.RabbitMQConfig) (*Client, error) {
	url := URL(cfg)

	var (
		conn *amqp.Connection
		err  error
	)
	if cfg.UseTLS {
		conn, err = amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
	} else {
		conn, err = amqp.Dial(url)
	}
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	// Включаем publisher confirms и подписываемся на подтверждения
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Client{conn: conn, ch: ch, acks: acks}, nil
}

// DeclareTopology объявляет topic-exchange для событий кафе (идемпотентно).
func (c *Client) DeclareTopology(exchange string) error {
	if c == nil || c.ch == nil {
		return errors.New("nil channel")
	}
	if err := c.ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", exchange, err)
	}
	return nil
}

// BindQueue объявляет durable-очередь и привязывает её к exchange по ключу.
func (c *Client) BindQueue(queue, exchange, key string) error {
	if c == nil || c.ch == nil {
		return errors.New("nil channel")
	}
	if _, err := c.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := c.ch.QueueBind(queue, key, exchange, false, nil); err != nil {
		return fmt.Errorf("bind %s to %s: %w", queue, exchange, err)
	}
	return nil
}

// Consume с ручным ack и заданным prefetch.
func (c *Client) Consume(queue, consumer string, prefetch int) (<-chan amqp.Delivery, error) {
	if c == nil || c.ch == nil {
		return nil, errors.New("nil channel")
	}
	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	return c.ch.Consume(queue, consumer, false, false, false, false, nil)
}

// Лёгкая health-проверка соединения
func (c *Client) Ping() error {
	if c == nil || c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Publish публикует сообщение и ждёт ack/nack от брокера.
// Не вызывает горутинно одновременно (сериализуется mutex-ом).
func (c *Client) Publish(ctx context.Context, exchange, key string,
	body []byte, headers amqp.Table, correlationID string) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.PublishWithContext(
		ctx,
		exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			CorrelationId: correlationID,
			Timestamp:     time.Now().UTC(),
			Headers:       headers,
			Body:          body,
		},
	); err != nil {
		return err
	}

	// ждём publisher confirm или отмену контекста
	select {
	case conf := <-c.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish NACK from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}
