package portfolio

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

var tracer = otel.Tracer("github.com/khoahotran/portfolio-view/usecase/portfolio")

type LoadPortfolioUseCase struct {
	store  portfolio.Store
	logger logger.Logger
}

func NewLoadPortfolioUseCase(store portfolio.Store, log logger.Logger) *LoadPortfolioUseCase {
	return &LoadPortfolioUseCase{store: store, logger: log}
}

type LoadPortfolioOutput struct {
	Snapshot portfolio.Snapshot
	Results  []portfolio.FragmentResult
}

// Execute reads the three fragments and assembles a snapshot. It never
// fails: a fragment that is absent, malformed or unreadable is replaced by
// its default without affecting the others.
func (uc *LoadPortfolioUseCase) Execute(ctx context.Context) *LoadPortfolioOutput {
	ctx, span := tracer.Start(ctx, "LoadPortfolio")
	defer span.End()

	out := &LoadPortfolioOutput{Snapshot: portfolio.DefaultSnapshot()}

	raw, res := uc.read(ctx, portfolio.KeyBasicInfo)
	if res.Status == portfolio.FragmentLoaded {
		out.Snapshot.BasicInfo, res.Status, res.Err = portfolio.DecodeBasicInfo(raw)
	}
	out.Results = append(out.Results, uc.report(res))

	raw, res = uc.read(ctx, portfolio.KeyExperiences)
	if res.Status == portfolio.FragmentLoaded {
		out.Snapshot.Experiences, res.Status, res.Err = portfolio.DecodeExperiences(raw)
	}
	out.Results = append(out.Results, uc.report(res))

	raw, res = uc.read(ctx, portfolio.KeyProjects)
	if res.Status == portfolio.FragmentLoaded {
		out.Snapshot.Projects, res.Status, res.Err = portfolio.DecodeProjects(raw)
	}
	out.Results = append(out.Results, uc.report(res))

	for _, r := range out.Results {
		span.SetAttributes(attribute.String("fragment."+r.Key, string(r.Status)))
	}
	return out
}

// read fetches one fragment. A Loaded result only means text was found;
// the caller still has to decode it.
func (uc *LoadPortfolioUseCase) read(ctx context.Context, key string) (string, portfolio.FragmentResult) {
	raw, found, err := uc.store.Get(ctx, key)
	switch {
	case err != nil:
		return "", portfolio.FragmentResult{Key: key, Status: portfolio.FragmentUnavailable, Err: err}
	case !found:
		return "", portfolio.FragmentResult{Key: key, Status: portfolio.FragmentAbsent}
	default:
		return raw, portfolio.FragmentResult{Key: key, Status: portfolio.FragmentLoaded}
	}
}

func (uc *LoadPortfolioUseCase) report(res portfolio.FragmentResult) portfolio.FragmentResult {
	switch res.Status {
	case portfolio.FragmentMalformed:
		uc.logger.Warn("Stored fragment is malformed, using default", zap.String("key", res.Key), zap.Error(res.Err))
	case portfolio.FragmentUnavailable:
		uc.logger.Warn("Failed to read fragment, using default", zap.String("key", res.Key), zap.Error(res.Err))
	}
	return res
}
