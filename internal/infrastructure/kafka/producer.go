package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsauctions/catalog-backend/internal/cfg"
	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события каталога (просмотры товаров, поиск,
// просмотры категорий) в топик Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

// eventEnvelope — конверт события в топике.
type eventEnvelope struct {
	EventID        string `json:"eventId"`
	EventTimestamp int64  `json:"eventTimestamp"`
	Type           string `json:"type"`
	ProductID      string `json:"productId,omitempty"`
	Slug           string `json:"slug,omitempty"`
	Query          string `json:"query,omitempty"`
	Results        int    `json:"results,omitempty"`
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Publish сериализует событие в JSON и отправляет его в топик. Ключом
// сообщения служит тип события, так все события одного типа попадают
// в одну партицию.
func (p *Producer) Publish(ctx context.Context, event *usecase.CatalogEvent) error {
	envelope := eventEnvelope{
		EventID:        uuid.NewString(),
		EventTimestamp: time.Now().UnixNano(),
		Type:           event.Type,
		ProductID:      event.ProductID,
		Slug:           event.Slug,
		Query:          event.Query,
		Results:        event.Results,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: value,
	})
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
