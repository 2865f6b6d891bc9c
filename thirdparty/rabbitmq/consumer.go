package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/ev-admin/model"
	ctxutil "github.com/muhammadheryan/ev-admin/utils/context"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Deliverer posts a notification to the marketplace backend.
type Deliverer interface {
	Deliver(ctx context.Context, req *model.NotificationRequest) error
}

type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	deliverer Deliverer
}

func NewConsumer(host string, port int, user, password string, deliverer Deliverer) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, deliverer: deliverer}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok { // channel closed
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

// handle delivers one message. A failed delivery is requeued once; a message that
// fails again after redelivery is dropped.
func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var req model.NotificationRequest
	if err := json.Unmarshal(msg.Body, &req); err != nil {
		logger.Error("[Consumer] err unmarshal message", zap.String("message_id", msg.MessageId), zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if token, ok := msg.Headers[headerBackendToken].(string); ok && token != "" {
		ctx = ctxutil.WithBackendToken(ctx, token)
	}

	if err := c.deliverer.Deliver(ctx, &req); err != nil {
		logger.Error("[Consumer] err Deliver",
			zap.String("reference_id", req.ReferenceID),
			zap.Int64("user_id", req.UserID),
			zap.Bool("redelivered", msg.Redelivered),
			zap.String("error", err.Error()))
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] notification delivered", zap.String("reference_id", req.ReferenceID), zap.Int64("user_id", req.UserID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
