package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"gorm.io/gorm"
)

type CurationService struct {
	db *gorm.DB
}

func NewCurationService(db *gorm.DB) *CurationService {
	return &CurationService{db: db}
}

// CreateCuration 큐레이션 생성과 스타일의 curationCount 증가는
// 한 트랜잭션이다. 둘 중 하나라도 실패하면 전부 취소된다.
func (s *CurationService) CreateCuration(styleID uint, req *models.CurationCreateRequest) (*models.CurationResponse, error) {
	if err := s.ensureStyleExists(styleID); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	curation := models.Curation{
		StyleID:           styleID,
		Nickname:          req.Nickname,
		Password:          hashed,
		Content:           req.Content,
		Trendy:            *req.Trendy,
		Personality:       *req.Personality,
		Practicality:      *req.Practicality,
		CostEffectiveness: *req.CostEffectiveness,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&curation).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Style{}).Where("id = ?", styleID).
			UpdateColumn("curation_count", gorm.Expr("curation_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return fmt.Errorf("curation count update affected %d rows", result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCurationResponse(&curation), nil
}

func (s *CurationService) GetCurations(styleID uint, req *models.CurationListRequest) (*models.PagedResponse, error) {
	if err := s.ensureStyleExists(styleID); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Curation{}).Where("style_id = ?", styleID)
	if req.Keyword != "" {
		kw := "%" + strings.ToLower(req.Keyword) + "%"
		switch req.SearchBy {
		case "nickname":
			query = query.Where("LOWER(nickname) LIKE ?", kw)
		case "content":
			query = query.Where("LOWER(content) LIKE ?", kw)
		default:
			query = query.Where("LOWER(nickname) LIKE ? OR LOWER(content) LIKE ?", kw, kw)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	// 큐레이션당 답글은 최대 하나라 Preload 한 번이면 된다.
	var curations []models.Curation
	offset := (req.Page - 1) * req.PageSize
	err := query.Preload("Comment").Order("created_at DESC").
		Limit(req.PageSize).Offset(offset).Find(&curations).Error
	if err != nil {
		return nil, err
	}

	data := make([]models.CurationListItem, 0, len(curations))
	for i := range curations {
		item := models.CurationListItem{
			CurationResponse: *toCurationResponse(&curations[i]),
			Comment:          struct{}{},
		}
		if curations[i].Comment != nil {
			item.Comment = toCommentResponse(curations[i].Comment)
		}
		data = append(data, item)
	}

	return &models.PagedResponse{
		CurrentPage:    req.Page,
		TotalPages:     int(math.Ceil(float64(total) / float64(req.PageSize))),
		TotalItemCount: int(total),
		Data:           data,
	}, nil
}

func (s *CurationService) UpdateCuration(curationID uint, req *models.CurationUpdateRequest) (*models.CurationResponse, error) {
	var curation models.Curation
	if err := s.db.First(&curation, curationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound()
		}
		return nil, err
	}
	if !utils.VerifyPassword(req.Password, curation.Password) {
		return nil, apperrors.Forbidden()
	}

	updates := map[string]any{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Trendy != nil {
		updates["trendy"] = *req.Trendy
	}
	if req.Personality != nil {
		updates["personality"] = *req.Personality
	}
	if req.Practicality != nil {
		updates["practicality"] = *req.Practicality
	}
	if req.CostEffectiveness != nil {
		updates["cost_effectiveness"] = *req.CostEffectiveness
	}
	if len(updates) > 0 {
		if err := s.db.Model(&curation).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&curation, curationID).Error; err != nil {
			return nil, err
		}
	}

	return toCurationResponse(&curation), nil
}

// DeleteCuration 삭제와 curationCount 감소는 한 트랜잭션이다.
func (s *CurationService) DeleteCuration(curationID uint, password string) error {
	var curation models.Curation
	if err := s.db.First(&curation, curationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound()
		}
		return err
	}
	if !utils.VerifyPassword(password, curation.Password) {
		return apperrors.Forbidden()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("curation_id = ?", curation.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&curation).Error; err != nil {
			return err
		}
		return tx.Model(&models.Style{}).Where("id = ?", curation.StyleID).
			UpdateColumn("curation_count", gorm.Expr("curation_count - 1")).Error
	})
}

func (s *CurationService) ensureStyleExists(styleID uint) error {
	var count int64
	if err := s.db.Model(&models.Style{}).Where("id = ?", styleID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound()
	}
	return nil
}

func toCurationResponse(curation *models.Curation) *models.CurationResponse {
	return &models.CurationResponse{
		ID:                curation.ID,
		Nickname:          curation.Nickname,
		Content:           curation.Content,
		Trendy:            curation.Trendy,
		Personality:       curation.Personality,
		Practicality:      curation.Practicality,
		CostEffectiveness: curation.CostEffectiveness,
		CreatedAt:         curation.CreatedAt,
	}
}
