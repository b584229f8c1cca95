package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// ClaimEvent is published for every claim lifecycle transition.
type ClaimEvent struct {
	ClaimID    string    `json:"claim_id"`
	FoodItemID string    `json:"food_item_id"`
	PosterID   string    `json:"poster_id"`
	ClaimerID  string    `json:"claimer_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer interface {
	PublishClaimEvent(ctx context.Context, event ClaimEvent) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	w := kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: topic, Balancer: &kafka.LeastBytes{}})
	return &KafkaProducer{writer: w}
}

func (k *KafkaProducer) PublishClaimEvent(ctx context.Context, event ClaimEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	b, _ := json.Marshal(event)
	return k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.ClaimID), Value: b})
}

func (k *KafkaProducer) Close() error {
	if k.writer == nil {
		return nil
	}
	return k.writer.Close()
}

// NopProducer is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) PublishClaimEvent(ctx context.Context, event ClaimEvent) error { return nil }
func (NopProducer) Close() error                                                  { return nil }
