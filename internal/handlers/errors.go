package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bariskaplan/portfolio-hub/internal/middleware"
	"github.com/bariskaplan/portfolio-hub/internal/models"
	"github.com/bariskaplan/portfolio-hub/pkg/logger"
)

// respondValidation returns the structured field-error list with a 400.
func respondValidation(c *gin.Context, errs models.ValidationErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errs})
}

// respondBadBody is used when the request body is not parseable JSON.
func respondBadBody(c *gin.Context) {
	respondValidation(c, models.ValidationErrors{
		{Field: "body", Message: "Invalid request body"},
	})
}

// respondInternal logs the failure server-side and returns a generic 500.
// No error detail leaks to the caller.
func respondInternal(c *gin.Context, err error) {
	logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("request failed")

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
