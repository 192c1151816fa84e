package respond

import (
	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/telemetry"
)

// ErrorBody is the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error logs and sends a standardized error response, aborting the chain.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := map[string]any{
		"status":    status,
		"code":      code,
		"message":   message,
		"path":      c.Request.URL.Path,
		"method":    c.Request.Method,
		"requestId": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["userId"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
