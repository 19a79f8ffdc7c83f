package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-bot/internal/config"
)

func TestURL(t *testing.T) {
	cfg := config.RabbitMQConfig{Host: "mq", Port: 5672, User: "guest", Password: "guest", VHost: "/"}
	assert.Equal(t, "amqp://guest:guest@mq:5672/", URL(cfg))

	cfg.VHost = "cafe"
	cfg.UseTLS = true
	assert.Equal(t, "amqps://guest:guest@mq:5672/cafe", URL(cfg))
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	c.Close()
	assert.EqualError(t, c.DeclareTopology("cafe_topic"), "nil channel")
}

func TestNilClientRejectsQueueOps(t *testing.T) {
	var c *Client
	assert.EqualError(t, c.BindQueue("cafe.notifications", "cafe_topic", "cafe.#"), "nil channel")
	_, err := c.Consume("cafe.notifications", "notificator", 1)
	assert.EqualError(t, err, "nil channel")
}

func TestPingWithoutConnection(t *testing.T) {
	var c *Client
	assert.EqualError(t, c.Ping(), "rabbitmq connection is closed")
	assert.EqualError(t, (&Client{}).Ping(), "rabbitmq connection is closed")
}
