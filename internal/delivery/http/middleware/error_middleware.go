package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var details interface{}
			switch {
			case appErr.Code == http.StatusUnprocessableEntity && appErr.Err != nil:
				details = validation.FormatValidationErrors(appErr.Err)
			case appErr.Code >= http.StatusInternalServerError:
				logger.Log.Error("internal error", "request_id", reqID, "path", c.FullPath(), "error", appErr.Err)
				response.Error(c, appErr.Code, "An unexpected error occurred. Please try again later.", nil)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
