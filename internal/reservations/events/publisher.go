package events

import (
	"context"
	"time"

	"oficinareserva/pkg/kafka"
	"oficinareserva/pkg/model"
)

// Publisher emits reservation lifecycle events. Publishing is best-effort:
// callers log failures but never fail the reservation over them.
type Publisher interface {
	ReservationCreated(ctx context.Context, reservation *model.Reservation) error
	ReservationCancelled(ctx context.Context, reservationID string) error
}

type kafkaPublisher struct {
	producer *kafka.Producer
}

func NewKafkaPublisher(producer *kafka.Producer) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) ReservationCreated(ctx context.Context, reservation *model.Reservation) error {
	msg, err := kafka.NewMessage(
		reservation.EquipmentID,
		TypeReservationCreated,
		Source,
		ReservationCreated{Reservation: *reservation},
	)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) ReservationCancelled(ctx context.Context, reservationID string) error {
	msg, err := kafka.NewMessage(
		reservationID,
		TypeReservationCancelled,
		Source,
		ReservationCancelled{
			ReservationID: reservationID,
			CancelledAt:   time.Now(),
		},
	)
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, msg)
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) ReservationCreated(context.Context, *model.Reservation) error {
	return nil
}

func (NoopPublisher) ReservationCancelled(context.Context, string) error {
	return nil
}
