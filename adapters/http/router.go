package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-view/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func NewRouter(portfolioHandler *PortfolioHandler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))
	router.SetHTMLTemplate(parseTemplates())

	router.GET("/", portfolioHandler.ShowPage)
	router.GET("/portfolio", portfolioHandler.ShowPage)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/portfolio", portfolioHandler.GetPortfolio)
	}

	return router
}
