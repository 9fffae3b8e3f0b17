package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

const (
	TopicPortfolioEvents = "portfolio.events"
	TopicViewEvents      = "portfolio.view.events"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	PortfolioEventsWriter messageWriter
	ViewEventsWriter      messageWriter
	logger                logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'portfolio.events'
	portfolioWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicPortfolioEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	// writer 'portfolio.view.events'
	viewWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicViewEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		PortfolioEventsWriter: portfolioWriter,
		ViewEventsWriter:      viewWriter,
		logger:                log,
	}, nil
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func (c *KafkaProducerClient) PublishViewEvent(ctx context.Context, payload service.ViewEventPayload) error {
	return publish(ctx, c.ViewEventsWriter, payload.EventID.String(), payload)
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload service.PortfolioEventPayload) error {
	return publish(ctx, c.PortfolioEventsWriter, payload.EventType, payload)
}

func publish(ctx context.Context, w messageWriter, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
