package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a room/membership event to the audit stream.
// Publishing is best-effort: failures are logged and never fail the request.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, roomID, userID uuid.UUID) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		RoomID:    roomID.String(),
	}
	if userID != uuid.Nil {
		event.UserID = userID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RoomID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "room_id", event.RoomID)
	}
}
