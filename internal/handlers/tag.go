package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/services"
)

type TagHandler struct {
	log        *logger.Logger
	tagService services.TagService
}

func NewTagHandler(log *logger.Logger, tagService services.TagService) *TagHandler {
	handlerLog := log.With("handler", "TagHandler")
	return &TagHandler{log: handlerLog, tagService: tagService}
}

// GET /api/tags
func (th *TagHandler) List(c *gin.Context) {
	views, err := th.tagService.List(c.Request.Context())
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/tags/:id
func (th *TagHandler) Get(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, th.log, apierr.NotFound("tag not found"))
		return
	}
	view, err := th.tagService.Get(c.Request.Context(), tagID)
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
