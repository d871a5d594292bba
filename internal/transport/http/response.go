package http

import (
	"errors"
	"net/http"

	"workforce_project/internal/apperr"
	"workforce_project/internal/middleware"
	"workforce_project/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates a failure into the {success, message, code}
// envelope. Anything outside the apperr taxonomy becomes a generic 500;
// internal error text is logged, never returned.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{
			"success": false,
			"message": ae.Message,
			"code":    ae.Code,
		})
		return
	}

	logger.Logger.Error("Unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "An unexpected server error occurred",
		"code":    "internal_error",
	})
}

func respondValidation(c *gin.Context, message string) {
	respondError(c, apperr.Validation(message))
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
