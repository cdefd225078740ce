package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// requestLogger puts the app logger into each request context and logs the
// outcome of the request.
func requestLogger(ctx context.Context) gin.HandlerFunc {
	base := log.FromCtx(ctx)
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(base.WithContext(c.Request.Context()))

		c.Next()

		base.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

func errorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		httpErr := asHTTPError(c.Errors.Last().Err)
		logger := log.FromCtx(c.Request.Context())
		if httpErr.Status >= http.StatusInternalServerError {
			logger.Error().Err(httpErr.Err).Str("code", httpErr.Code).Msg("request failed")
		} else {
			logger.Debug().Err(httpErr.Err).Str("code", httpErr.Code).Msg("request rejected")
		}

		c.JSON(httpErr.Status, gin.H{
			"error": gin.H{
				"code":    httpErr.Code,
				"message": httpErr.Message,
			},
		})
	}
}
