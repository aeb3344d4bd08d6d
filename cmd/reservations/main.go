package main

import (
	"oficinareserva/internal/catalog"
	"oficinareserva/internal/reservations/events"
	"oficinareserva/internal/reservations/handler"
	"oficinareserva/internal/reservations/repository"
	"oficinareserva/internal/reservations/service"
	"oficinareserva/internal/reservations/validator"
	"oficinareserva/pkg/app"
	"oficinareserva/pkg/config"
	"oficinareserva/pkg/kafka"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Reservations service")
	reservationService, cat := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, cat, cfg.ManagerPassword, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.ReservationService, *catalog.Catalog) {
	cat := catalog.New(catalog.DefaultEquipment())
	reservationValidator := validator.NewReservationValidator(cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)

	reservationService := service.NewReservationService(
		reservationRepo,
		lockRepo,
		cat,
		reservationValidator,
		buildPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Reservations service initialized", "database", cfg.MongoDatabaseName)
	return reservationService, cat
}

// buildPublisher wires the event producer. Running without brokers is a
// supported single-node setup: events are simply not emitted.
func buildPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Warn("No Kafka brokers configured, reservation events disabled")
		return events.NoopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	return events.NewKafkaPublisher(producer)
}
