package handlers

import (
	"strconv"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/services"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"github.com/SeokGyeon/1-HowDoILook-1team/pkg/validator"
	"github.com/gin-gonic/gin"
)

type StyleHandler struct {
	styleService *services.StyleService
}

func NewStyleHandler(styleService *services.StyleService) *StyleHandler {
	return &StyleHandler{styleService: styleService}
}

func (h *StyleHandler) CreateStyle(c *gin.Context) {
	var req models.StyleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	style, err := h.styleService.CreateStyle(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, style)
}

func (h *StyleHandler) GetStyles(c *gin.Context) {
	var req models.StyleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	page, err := h.styleService.GetStyles(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, page)
}

func (h *StyleHandler) GetStyle(c *gin.Context) {
	styleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	style, err := h.styleService.GetStyle(styleID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, style)
}

func (h *StyleHandler) UpdateStyle(c *gin.Context) {
	styleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.StyleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	style, err := h.styleService.UpdateStyle(styleID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, style)
}

func (h *StyleHandler) DeleteStyle(c *gin.Context) {
	styleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		utils.BadRequest(c)
		return
	}

	if err := h.styleService.DeleteStyle(styleID, req.Password); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Message(c, "스타일 삭제 성공")
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.BadRequest(c)
		return 0, false
	}
	// 0은 존재할 수 없는 id이므로 조회 실패와 같게 다룬다.
	if id == 0 {
		utils.Error(c, apperrors.NotFound())
		return 0, false
	}
	return uint(id), true
}
