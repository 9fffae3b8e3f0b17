package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/adapters/event"
	"github.com/khoahotran/portfolio-view/adapters/persistence"
	"github.com/khoahotran/portfolio-view/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio-view/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio View Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("config Kafka brokers not found", nil)
	}

	// Redis view counter
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	counter := persistence.NewRedisViewCounter(redisClient, cfg.Redis.KeyPrefix)
	recordViewUC := portfolioUC.NewRecordViewUseCase(counter, appLogger)

	// Kafka Consumer
	viewConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer viewConsumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicViewEvents), zap.String("group_id", cfg.Kafka.GroupID))

	for {
		msg, err := viewConsumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload service.ViewEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Warn("Failed to unmarshal event, skipping", zap.Error(err), zap.Int64("offset", msg.Offset))
			commitMessage(ctx, viewConsumer, msg, appLogger)
			continue
		}

		if err := recordViewUC.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to record view", err, zap.String("event_id", payload.EventID.String()))
			continue
		}

		commitMessage(ctx, viewConsumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
