package handlers

import (
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/services"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, tags)
}

func (h *TagHandler) GetPopularTags(c *gin.Context) {
	tags, err := h.tagService.GetPopularTags()
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, tags)
}
