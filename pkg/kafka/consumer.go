package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"oficinareserva/pkg/logger"
)

// Consumer reads one topic as part of a consumer group and feeds every
// message to the handler. Offsets are committed only after the handler
// returns nil; handler failures are logged and the offset is committed
// anyway, since reservation notifications are not worth wedging the
// partition over.
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	log     *logger.Logger
	closed  bool
	mu      sync.RWMutex
}

func NewConsumer(brokers []string, topic, groupID string, handler MessageHandler, log *logger.Logger) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		MinBytes:    1,
		MaxBytes:    1 << 20,
		MaxWait:     500 * time.Millisecond,
		StartOffset: kafka.LastOffset,
		Logger:      kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf("kafka consumer: "+msg, args...))
		}),
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
		log:     log,
	}, nil
}

// Start blocks consuming messages until ctx is cancelled or the consumer
// is closed.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrConsumerClosed
	}
	c.mu.RUnlock()

	for {
		kafkaMsg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.log.Error("Failed to fetch message", "error", err)
			time.Sleep(1 * time.Second)
			continue
		}

		msg := Message{
			Key:       string(kafkaMsg.Key),
			Value:     kafkaMsg.Value,
			Headers:   make(map[string]string, len(kafkaMsg.Headers)),
			Topic:     kafkaMsg.Topic,
			Partition: kafkaMsg.Partition,
			Offset:    kafkaMsg.Offset,
			Timestamp: kafkaMsg.Time,
		}
		for _, h := range kafkaMsg.Headers {
			msg.Headers[h.Key] = string(h.Value)
		}

		if err := c.handler(ctx, msg); err != nil {
			c.log.Error("Message handler failed",
				"event_id", msg.EventID(),
				"event_type", msg.EventType(),
				"offset", msg.Offset,
				"error", err,
			)
		}

		if err := c.reader.CommitMessages(ctx, kafkaMsg); err != nil {
			c.log.Error("Failed to commit offset", "offset", kafkaMsg.Offset, "error", err)
		}
	}
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.reader.Close()
}
