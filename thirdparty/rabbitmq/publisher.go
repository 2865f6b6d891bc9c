package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/ev-admin/model"
	ctxutil "github.com/muhammadheryan/ev-admin/utils/context"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishNotification queues a notification for delivery by the consumer.
func (p *Publisher) PublishNotification(ctx context.Context, req *model.NotificationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		NotificationExchange,   // exchange
		NotificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    req.ReferenceID,
			Timestamp:    time.Now(),
			Body:         body,
			Headers: amqp091.Table{
				headerBackendToken: ctxutil.GetBackendToken(ctx),
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
