package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-view/pkg/apperror"
	"github.com/khoahotran/portfolio-view/pkg/logger"
)

// ErrorMiddleware renders the last error attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		log.Error("Request failed", err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		)

		if c.Writer.Written() {
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, gin.H{"error": apperror.ErrInternal.Error()})
	}
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		)
	}
}
