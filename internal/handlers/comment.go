package handlers

import (
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/services"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"github.com/SeokGyeon/1-HowDoILook-1team/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	curationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	comment, err := h.commentService.CreateComment(curationID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, comment)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	curationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.GetComments(curationID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, comments)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c)
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.BadRequest(c)
		return
	}

	comment, err := h.commentService.UpdateComment(commentID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.OK(c, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
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

	if err := h.commentService.DeleteComment(commentID, req.Password); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Message(c, "답글 삭제 성공")
}
