package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-view/adapters/http"
	"github.com/khoahotran/portfolio-view/adapters/media_storage"
	"github.com/khoahotran/portfolio-view/adapters/persistence"
	"github.com/khoahotran/portfolio-view/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio-view/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-view/internal/config"
	"github.com/khoahotran/portfolio-view/pkg/logger"
	"github.com/khoahotran/portfolio-view/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio View Server...", zap.String("store_driver", cfg.Store.Driver))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, cfg.Tracing.ServiceName)
	if err != nil {
		appLogger.Warn("Tracing unavailable, continue without it", zap.Error(err))
	}
	defer tracing.Shutdown(tp, appLogger)

	// Storage
	store, closeStore, err := persistence.NewFragmentStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open fragment store", err)
	}
	defer closeStore()

	// Optional services
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, page views are not reported.")
	}

	avatars := service.NewPassthroughAvatarResolver()
	if cfg.Cloudinary.CloudName != "" {
		avatars, err = media_storage.NewCloudinaryAvatarResolver(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize avatar delivery", err)
		}
	}

	// Use Cases
	loadPortfolioUseCase := portfolioUC.NewLoadPortfolioUseCase(store, appLogger)

	// HTTP
	portfolioHandler := httpAdapter.NewPortfolioHandler(loadPortfolioUseCase, avatars, publisher, appLogger)
	router := httpAdapter.NewRouter(portfolioHandler, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
