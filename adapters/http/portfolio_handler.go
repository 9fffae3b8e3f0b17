package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio-view/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

const (
	DefaultEditURL      = "/form"
	publishEventTimeout = 5 * time.Second
)

type PortfolioHandler struct {
	loadPortfolioUseCase *portfolioUC.LoadPortfolioUseCase
	avatars              service.AvatarResolver
	publisher            service.EventPublisher
	editURL              string
	logger               logger.Logger
}

// NewPortfolioHandler accepts a nil publisher; views are then not reported.
func NewPortfolioHandler(
	loadUC *portfolioUC.LoadPortfolioUseCase,
	avatars service.AvatarResolver,
	publisher service.EventPublisher,
	log logger.Logger,
) *PortfolioHandler {
	if avatars == nil {
		avatars = service.NewPassthroughAvatarResolver()
	}
	return &PortfolioHandler{
		loadPortfolioUseCase: loadUC,
		avatars:              avatars,
		publisher:            publisher,
		editURL:              DefaultEditURL,
		logger:               log,
	}
}

// ShowPage is one page activation: a fresh view model is initialized,
// rendered and dropped with the request.
func (h *PortfolioHandler) ShowPage(c *gin.Context) {
	vm := portfolioUC.NewViewModel(h.loadPortfolioUseCase)
	vm.Initialize(c.Request.Context())

	c.HTML(http.StatusOK, "portfolio.html", h.pageView(vm))

	h.reportView(c)
}

func (h *PortfolioHandler) pageView(vm *portfolioUC.ViewModel) PortfolioPageView {
	snapshot, ok := vm.Snapshot()
	if !ok {
		return PortfolioPageView{Loading: true}
	}
	return ToPortfolioPageView(snapshot, h.avatars, h.editURL)
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	output := h.loadPortfolioUseCase.Execute(c.Request.Context())
	c.JSON(http.StatusOK, ToPortfolioDTO(output.Snapshot))
}

func (h *PortfolioHandler) reportView(c *gin.Context) {
	if h.publisher == nil {
		return
	}
	payload := service.ViewEventPayload{
		EventID:    uuid.New(),
		EventType:  service.EventTypePortfolioViewed,
		Path:       c.Request.URL.Path,
		UserAgent:  c.Request.UserAgent(),
		OccurredAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishEventTimeout)
		defer cancel()
		if err := h.publisher.PublishViewEvent(ctx, payload); err != nil {
			h.logger.Error("Failed to publish 'viewed' event", err, zap.String("event_id", payload.EventID.String()))
		}
	}()
}
