package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"menuqr-dashboard/dashboard-svc/internal/controller"
	"menuqr-dashboard/dashboard-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const ActivityType = "dashboard_activity"

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var (
	_ controller.ActivityRecorder = (*ActivityPublisher)(nil)
	_ MessageWriter               = (*kafka.Writer)(nil)
	_ MessageReader               = (*kafka.Reader)(nil)
)

// Message is the payload written to the activity topic.
type Message struct {
	Type     string          `json:"type"`
	Activity domain.Activity `json:"activity"`
}

// ActivityPublisher records dashboard mutations on a Kafka topic, keyed by
// tenant so one restaurant's events stay ordered.
type ActivityPublisher struct {
	Writer MessageWriter
}

func NewActivityPublisher(writer MessageWriter) *ActivityPublisher {
	return &ActivityPublisher{Writer: writer}
}

func (p *ActivityPublisher) Record(ctx context.Context, activity domain.Activity) error {
	payload, err := json.Marshal(Message{Type: ActivityType, Activity: activity})
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}
	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(activity.TenantID),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("publish activity: %w", err)
	}
	return nil
}

// ActivityFeed reads activity events back, for operators tailing a tenant.
type ActivityFeed struct {
	Reader   MessageReader
	TenantID string
}

func NewActivityFeed(reader MessageReader, tenantID string) *ActivityFeed {
	return &ActivityFeed{Reader: reader, TenantID: tenantID}
}

// Start hands each activity of the feed's tenant to handle until ctx ends.
// Unreadable messages are logged and skipped.
func (f *ActivityFeed) Start(ctx context.Context, handle func(domain.Activity)) error {
	for {
		message, err := f.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			log.Printf("ERROR: [EVENTS] reading activity: %v", err)
			return err
		}

		var msg Message
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Warning: [EVENTS] skipping malformed activity at offset %d: %v", message.Offset, err)
			continue
		}
		if msg.Type != ActivityType {
			continue
		}
		if f.TenantID != "" && msg.Activity.TenantID != f.TenantID {
			continue
		}
		handle(msg.Activity)
	}
}
