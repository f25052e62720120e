// Package rabbitmq publishes annotation lifecycle events to an AMQP queue.
// Publishing is optional: the services accept a nil client and skip events
// entirely when no broker is configured.
package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// AnnotationQueue is the queue annotation events are published to.
const AnnotationQueue = "annotation_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ and declares the annotation queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		AnnotationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", AnnotationQueue, err)
	}

	log.Printf("RabbitMQ client connected, %s declared", AnnotationQueue)

	return &Client{conn: conn, channel: ch}, nil
}

// PublishAnnotationEvent publishes a JSON event such as thread.created or
// image.deleted. A nil client is a no-op so callers need no broker to run.
func (c *Client) PublishAnnotationEvent(event string, payload map[string]interface{}) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
		"at":      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	err = c.channel.Publish(
		"",              // default exchange
		AnnotationQueue, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event, err)
	}
	return nil
}

// ConsumeAnnotationEvents delivers queued events to handler. Used by the
// log-only consumer in main; handler errors Nack the message for requeue.
func (c *Client) ConsumeAnnotationEvents(handler func(amqp.Delivery) error) error {
	if c == nil {
		return fmt.Errorf("rabbitmq client is not configured")
	}

	msgs, err := c.channel.Consume(
		AnnotationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", AnnotationQueue, err)
	}

	for msg := range msgs {
		if handlerErr := handler(msg); handlerErr != nil {
			log.Printf("Annotation event handler failed: %v", handlerErr)
			_ = msg.Nack(false, true)
			continue
		}
		_ = msg.Ack(false)
	}
	return nil
}

// Close shuts down the channel and connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
		}
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
