package portfolio

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

type RecordViewUseCase struct {
	counter service.ViewCounter
	logger  logger.Logger
}

func NewRecordViewUseCase(counter service.ViewCounter, log logger.Logger) *RecordViewUseCase {
	return &RecordViewUseCase{counter: counter, logger: log}
}

func (uc *RecordViewUseCase) Execute(ctx context.Context, payload service.ViewEventPayload) error {
	if payload.EventType != service.EventTypePortfolioViewed {
		uc.logger.Warn("Skip unknown view event", zap.String("event_type", payload.EventType))
		return nil
	}

	total, err := uc.counter.Increment(ctx)
	if err != nil {
		return fmt.Errorf("increment view counter failed: %w", err)
	}

	uc.logger.Info("Portfolio view recorded",
		zap.String("event_id", payload.EventID.String()),
		zap.String("path", payload.Path),
		zap.Int64("total_views", total),
	)
	return nil
}
