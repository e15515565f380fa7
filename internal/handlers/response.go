package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
)

// respondError maps a service error to its wire shape: validation failures as
// {field: [messages]}, duplicate/self-relation failures as {"errors": msg},
// not-found as {"detail": msg}. Anything unrecognized is a 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	apiErr, ok := apierr.As(err)
	if !ok {
		log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	switch apiErr.Code {
	case apierr.CodeValidation:
		c.JSON(apiErr.Status, apiErr.Fields)
	case apierr.CodeAlreadyExists, apierr.CodeSelfSubscription, apierr.CodeBadRequest:
		c.JSON(apiErr.Status, gin.H{"errors": apiErr.Error()})
	case apierr.CodeNotFound, apierr.CodeForbidden, apierr.CodeUnauthorized:
		c.JSON(apiErr.Status, gin.H{"detail": apiErr.Error()})
	default:
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Error()})
	}
}
