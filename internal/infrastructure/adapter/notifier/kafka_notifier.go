package notifier

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/lionswap/reservation-service/internal/domain/port/client"
	coreport "github.com/lionswap/reservation-service/internal/domain/port/core"
)

// KafkaNotifier publishes reservation events to a Kafka topic. Events are
// keyed by item ID so all events for one item land on the same partition.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger coreport.Logger
}

// NewKafkaNotifier creates a notifier writing to the given brokers and topic
func NewKafkaNotifier(brokers []string, topic string, logger coreport.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
	return &KafkaNotifier{
		writer: writer,
		logger: logger,
	}
}

// NotifyItemReserved publishes an item-reserved event
func (n *KafkaNotifier) NotifyItemReserved(ctx context.Context, event client.ItemReservedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(event.ItemID, 10)),
		Value: payload,
	})
	if err != nil {
		n.logger.Warn("Failed to publish item-reserved event", map[string]any{
			"item_id":   event.ItemID,
			"seller_id": event.SellerID,
			"error":     err.Error(),
		})
		return err
	}

	n.logger.Debug("Published item-reserved event", map[string]any{
		"item_id":   event.ItemID,
		"seller_id": event.SellerID,
	})
	return nil
}

// Close releases the underlying Kafka writer
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
