package services

import (
	"errors"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment 답글은 큐레이션이 아니라 스타일 작성자의 비밀번호로 검증하고,
// 닉네임도 스타일 작성자의 것을 그대로 쓴다. 비밀번호는 받은 평문 그대로 저장한다.
func (s *CommentService) CreateComment(curationID uint, req *models.CommentCreateRequest) (*models.CommentResponse, error) {
	var curation models.Curation
	if err := s.db.Preload("Style").First(&curation, curationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound()
		}
		return nil, err
	}
	if curation.Style.ID == 0 {
		return nil, apperrors.NotFound()
	}

	if !utils.VerifyPassword(req.Password, curation.Style.Password) {
		return nil, apperrors.Forbidden()
	}

	var existing int64
	if err := s.db.Model(&models.Comment{}).Where("curation_id = ?", curationID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperrors.Conflict()
	}

	comment := models.Comment{
		CurationID: curationID,
		Nickname:   curation.Style.Nickname,
		Password:   req.Password,
		Content:    req.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		// 동시 요청은 curation_id unique 인덱스에서 걸린다.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict()
		}
		return nil, err
	}

	return toCommentResponse(&comment), nil
}

func (s *CommentService) GetComments(curationID uint) ([]*models.CommentResponse, error) {
	var count int64
	if err := s.db.Model(&models.Curation{}).Where("id = ?", curationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound()
	}

	var comments []models.Comment
	if err := s.db.Where("curation_id = ?", curationID).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}

	responses := make([]*models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, toCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *CommentService) UpdateComment(commentID uint, req *models.CommentUpdateRequest) (*models.CommentResponse, error) {
	comment, err := s.authorize(commentID, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("content", req.Content).Error; err != nil {
		return nil, err
	}
	comment.Content = req.Content

	return toCommentResponse(comment), nil
}

func (s *CommentService) DeleteComment(commentID uint, password string) error {
	comment, err := s.authorize(commentID, password)
	if err != nil {
		return err
	}
	return s.db.Delete(comment).Error
}

// authorize 수정/삭제는 답글 자신의 비밀번호로 검증한다.
func (s *CommentService) authorize(commentID uint, password string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound()
		}
		return nil, err
	}
	if !utils.VerifyPassword(password, comment.Password) {
		return nil, apperrors.Forbidden()
	}
	return &comment, nil
}

func toCommentResponse(comment *models.Comment) *models.CommentResponse {
	return &models.CommentResponse{
		ID:        comment.ID,
		Nickname:  comment.Nickname,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
