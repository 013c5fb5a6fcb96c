package events

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// handlerFunc обработчик сообщения одного топика
type handlerFunc func(ctx context.Context, payload []byte) error

// Consumer читает топик Kafka и передает сообщения обработчику
// Ошибка обработчика не коммитит offset: сообщение будет доставлено повторно,
// поэтому все обработчики обязаны быть идемпотентными
type Consumer struct {
	reader  *kafka.Reader
	topic   string
	handler handlerFunc
	metrics *metrics.Metrics
	logger  Logger
}

// ConsumerConfig настройки подключения консьюмера
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

func newConsumer(cfg ConsumerConfig, topic string, handler handlerFunc, m *metrics.Metrics, logger Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		CommitInterval: 0, // Явный коммит после успешной обработки
		Logger:         kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:    kafka.LoggerFunc(logger.Error),
	})

	return &Consumer{
		reader:  reader,
		topic:   topic,
		handler: handler,
		metrics: m,
		logger:  logger,
	}
}

// Run читает сообщения до отмены контекста
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("events: consumer started for topic=%s", c.topic)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("events: fetch failed for topic=%s: %v", c.topic, err)
			return err
		}

		if err := c.handler(ctx, msg.Value); err != nil {
			c.observe("error")
			c.logger.Error("events: handler failed for topic=%s offset=%d: %v", c.topic, msg.Offset, err)
			// Offset не коммитим: сообщение будет перечитано
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("events: commit failed for topic=%s offset=%d: %v", c.topic, msg.Offset, err)
			continue
		}

		c.observe("ok")
	}
}

// observe учитывает обработанное событие, если метрики включены
func (c *Consumer) observe(status string) {
	if c.metrics == nil {
		return
	}
	c.metrics.KafkaEventsTotal.WithLabelValues(c.topic, status).Inc()
}

// Close освобождает ресурсы консьюмера
func (c *Consumer) Close() error {
	return c.reader.Close()
}
