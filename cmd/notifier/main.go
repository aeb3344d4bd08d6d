package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"oficinareserva/internal/notifier"
	"oficinareserva/pkg/config"
	"oficinareserva/pkg/kafka"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)

	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Fatal("Notifier requires Kafka brokers, set KAFKA_BROKERS")
	}

	worker := notifier.New(cfg.Log)
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, worker.Handle, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting Notifier service",
		"topic", cfg.KafkaTopic,
		"group_id", cfg.KafkaGroupID,
	)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier service stopped")
}
