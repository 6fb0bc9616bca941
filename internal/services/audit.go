package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/avelora/gw-agent-economy/internal/logger"
)

// AuditRecorder records terminal transitions of money-moving operations.
// Recording is fire-and-forget: implementations must never fail the
// triggering operation. A deployment without an audit sink uses
// NopAuditRecorder, not a runtime capability check.
type AuditRecorder interface {
	Record(ctx context.Context, action, entityType, entityID string, meta map[string]any)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// auditEvent is the wire format published to the audit topic.
type auditEvent struct {
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Meta       map[string]any `json:"meta,omitempty"`
	Timestamp  int64          `json:"timestamp"`
}

// KafkaAuditRecorder publishes audit events to a Kafka topic.
type KafkaAuditRecorder struct {
	writer KafkaWriter
}

func NewKafkaAuditRecorder(writer KafkaWriter) *KafkaAuditRecorder {
	return &KafkaAuditRecorder{writer: writer}
}

// Record publishes one audit event. Failures are logged and swallowed.
func (r *KafkaAuditRecorder) Record(ctx context.Context, action, entityType, entityID string, meta map[string]any) {
	if r.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping audit event", "action", action)
		return
	}

	data, err := json.Marshal(auditEvent{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Meta:       meta,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "action", action, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID),
		Value: data,
	}

	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "action", action, "entity_id", entityID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "action", action, "entity_id", entityID)
	}
}

// NopAuditRecorder discards audit events.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(ctx context.Context, action, entityType, entityID string, meta map[string]any) {
}
