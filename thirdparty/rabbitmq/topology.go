package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	NotificationExchange   = "admin_notification_exchange"
	NotificationQueue      = "admin_notification_queue"
	NotificationRoutingKey = "notification"

	// headerBackendToken carries the admin's marketplace token to the consumer.
	headerBackendToken = "x-backend-token"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declare(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declare(channel *amqp091.Channel) error {
	// Declare the exchange
	err := channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		NotificationQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	// Bind queue to exchange
	return channel.QueueBind(
		NotificationQueue,      // queue name
		NotificationRoutingKey, // routing key
		NotificationExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}
