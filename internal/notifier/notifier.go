package notifier

import (
	"context"
	"fmt"

	"oficinareserva/internal/reservations/events"
	"oficinareserva/pkg/kafka"
	"oficinareserva/pkg/logger"
)

// Notifier turns reservation events into workshop notifications. The
// current delivery channel is the structured log; the handler shape is
// what an email or chat integration would plug into.
type Notifier struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

// Handle implements kafka.MessageHandler. Unknown event types are logged
// and committed: skipping them is safer than wedging the consumer group
// on a poison message.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.EventType() {
	case events.TypeReservationCreated:
		return n.handleCreated(msg)
	case events.TypeReservationCancelled:
		return n.handleCancelled(msg)
	default:
		n.log.Warn("Skipping message with unknown event type",
			"event_id", msg.EventID(),
			"event_type", msg.EventType(),
		)
		return nil
	}
}

func (n *Notifier) handleCreated(msg kafka.Message) error {
	var payload events.ReservationCreated
	if err := msg.DecodeValue(&payload); err != nil {
		return fmt.Errorf("decoding %s event %s: %w", events.TypeReservationCreated, msg.EventID(), err)
	}

	r := payload.Reservation
	n.log.Info("Reservation confirmed",
		"event_id", msg.EventID(),
		"reservation_id", r.ID,
		"equipment_id", r.EquipmentID,
		"equipment_name", r.EquipmentName,
		"date", r.Date,
		"start_time", r.StartTime,
		"end_time", r.EndTime,
		"user_name", r.UserName,
	)
	return nil
}

func (n *Notifier) handleCancelled(msg kafka.Message) error {
	var payload events.ReservationCancelled
	if err := msg.DecodeValue(&payload); err != nil {
		return fmt.Errorf("decoding %s event %s: %w", events.TypeReservationCancelled, msg.EventID(), err)
	}

	n.log.Info("Reservation cancelled",
		"event_id", msg.EventID(),
		"reservation_id", payload.ReservationID,
		"cancelled_at", payload.CancelledAt,
	)
	return nil
}
