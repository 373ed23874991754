package handlers

import (
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/services"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"github.com/SeokGyeon/1-HowDoILook-1team/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CurationHandler struct {
	curationService *services.CurationService
}

func NewCurationHandler(curationService *services.CurationService) *CurationHandler {
	return &CurationHandler{curationService: curationService}
}

func (h *CurationHandler) CreateCuration(c *gin.Context) {
	styleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CurationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	curation, err := h.curationService.CreateCuration(styleID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, curation)
}

func (h *CurationHandler) GetCurations(c *gin.Context) {
	styleID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CurationListRequest
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

	page, err := h.curationService.GetCurations(styleID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, page)
}

func (h *CurationHandler) UpdateCuration(c *gin.Context) {
	curationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CurationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	curation, err := h.curationService.UpdateCuration(curationID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, curation)
}

func (h *CurationHandler) DeleteCuration(c *gin.Context) {
	curationID, ok := parseID(c, "id")
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

	if err := h.curationService.DeleteCuration(curationID, req.Password); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Message(c, "큐레이팅 삭제 성공")
}
