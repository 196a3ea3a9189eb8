package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"lookmyshow/internal/logger"
)

// BookingCreatedMessage is the payload streamed for every confirmed booking.
type BookingCreatedMessage struct {
	MessageID  string    `json:"message_id"`
	EventID    int64     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	UserEmail  string    `json:"user_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type Producer struct {
	Writer *kafka.Writer
	Logger *logger.Logger
}

func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &Producer{Writer: writer, Logger: log}
}

// PublishBookingCreated streams the booking confirmation to Kafka, keyed by a
// fresh message id.
func (p *Producer) PublishBookingCreated(eventID int64, eventTitle, userEmail string) error {
	msg := BookingCreatedMessage{
		MessageID:  uuid.NewString(),
		EventID:    eventID,
		EventTitle: eventTitle,
		UserEmail:  userEmail,
		CreatedAt:  time.Now().UTC(),
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if p.Logger != nil {
		p.Logger.LogKafka("PUBLISH", p.Writer.Topic, fmt.Sprintf("booking_created: %s", msg.MessageID))
	}

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(msg.MessageID),
			Value: msgBytes,
		},
	)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

// MockProducer logs instead of writing, for local runs without a broker.
type MockProducer struct {
	Logger *logger.Logger
}

func (p *MockProducer) PublishBookingCreated(eventID int64, eventTitle, userEmail string) error {
	if p.Logger != nil {
		p.Logger.LogKafka("MOCK", "booking-events",
			fmt.Sprintf("booking_created: event=%d title=%q email=%s", eventID, eventTitle, userEmail))
	}
	return nil
}
