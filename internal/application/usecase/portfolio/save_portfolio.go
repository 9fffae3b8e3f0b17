package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/apperror"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

type SavePortfolioUseCase struct {
	store     portfolio.Store
	publisher service.EventPublisher
	logger    logger.Logger
}

// NewSavePortfolioUseCase accepts a nil publisher when no broker is configured.
func NewSavePortfolioUseCase(store portfolio.Store, publisher service.EventPublisher, log logger.Logger) *SavePortfolioUseCase {
	return &SavePortfolioUseCase{store: store, publisher: publisher, logger: log}
}

// SavePortfolioInput replaces every fragment that is set. A nil field
// leaves the stored fragment untouched; an empty slice clears it.
type SavePortfolioInput struct {
	BasicInfo   *portfolio.BasicInfo   `json:"basicInfo"`
	Experiences []portfolio.Experience `json:"experiences"`
	Projects    []portfolio.Project    `json:"projects"`
}

type SavePortfolioOutput struct {
	Keys []string
}

func (uc *SavePortfolioUseCase) Execute(ctx context.Context, input SavePortfolioInput) (*SavePortfolioOutput, error) {
	type fragment struct {
		key   string
		value any
	}
	var fragments []fragment

	if input.BasicInfo != nil {
		info := *input.BasicInfo
		if info.Skills == nil {
			info.Skills = []string{}
		}
		fragments = append(fragments, fragment{portfolio.KeyBasicInfo, info})
	}
	if input.Experiences != nil {
		fragments = append(fragments, fragment{portfolio.KeyExperiences, input.Experiences})
	}
	if input.Projects != nil {
		fragments = append(fragments, fragment{portfolio.KeyProjects, input.Projects})
	}
	if len(fragments) == 0 {
		return nil, apperror.NewInvalidInput("no fragment to save", nil)
	}

	out := &SavePortfolioOutput{}
	for _, f := range fragments {
		raw, err := portfolio.Encode(f.value)
		if err != nil {
			return nil, apperror.NewInternal(fmt.Sprintf("failed to encode %s", f.key), err)
		}
		if err := uc.store.Set(ctx, f.key, raw); err != nil {
			return nil, fmt.Errorf("save fragment %s failed: %w", f.key, err)
		}
		out.Keys = append(out.Keys, f.key)
	}

	uc.logger.Info("Portfolio fragments saved", zap.Strings("keys", out.Keys))

	if uc.publisher != nil {
		err := uc.publisher.PublishPortfolioEvent(ctx, service.PortfolioEventPayload{
			EventID:    uuid.New(),
			EventType:  service.EventTypePortfolioUpdated,
			Keys:       out.Keys,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'updated' event", err, zap.Strings("keys", out.Keys))
		}
	}

	return out, nil
}
