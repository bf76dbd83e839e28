// Package kafkanotifier publishes notification events to a Kafka topic.
// The notification service consumes the topic and owns rendering and
// delivery; this side only produces the event envelope.
package kafkanotifier

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/NormanProjects/mashia-mesh/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Notifier writes NotificationEvents as JSON messages keyed by order ID, so
// all events for one order land in the same partition in order.
type Notifier struct {
	writer *kafka.Writer
}

// NewNotifier creates a notifier producing to the given topic. Brokers is a
// comma-separated address list.
func NewNotifier(brokers, topic string) *Notifier {
	return &Notifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

// Notify publishes one event. Callers treat failures as non-fatal.
func (n *Notifier) Notify(ctx context.Context, event ports.NotificationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
