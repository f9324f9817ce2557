package employee

import (
	"context"
	"encoding/json"
	"time"

	"go-hris-graphql/internal/events"
	"go-hris-graphql/internal/messaging/kafka"
	"go-hris-graphql/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const aggregateType = "employee"

// enqueueLifecycleEvent writes the event into the outbox inside tx. It is a
// no-op when the service was built without an outbox.
func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *gorm.DB, eventType string, empl Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:   eventType,
		RequestID:   rid,
		EmployeeID:  empl.ID.String(),
		Designation: empl.Designation,
		Department:  empl.Department,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: aggregateType,
		AggregateID:   empl.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
