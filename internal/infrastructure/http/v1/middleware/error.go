package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventaro/internal/core/apperror"
	"inventaro/pkg/logger"
)

// ErrorHandler turns the last error registered on the context into a
// plain-text response carrying the AppError status and message.
// Internal causes are logged and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			} else if appErr.Err != nil {
				logger.Warn(c.Request.Context(), "request rejected",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.String(appErr.HTTPStatus, appErr.Message)
			return
		}

		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.String(http.StatusInternalServerError, apperror.NewInternal(err).Message)
	}
}
