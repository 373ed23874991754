package services

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/utils"
	"gorm.io/gorm"
)

type StyleService struct {
	db *gorm.DB
}

func NewStyleService(db *gorm.DB) *StyleService {
	return &StyleService{db: db}
}

func (s *StyleService) CreateStyle(req *models.StyleCreateRequest) (*models.StyleResponse, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	style := models.Style{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Nickname:    req.Nickname,
		Password:    hashed,
	}
	for _, cat := range req.Categories {
		style.Categories = append(style.Categories, models.Category{
			Type:  cat.Type,
			Name:  cat.Name,
			Brand: cat.Brand,
			Price: cat.Price,
		})
	}
	for i, url := range req.ImageURLs {
		style.Images = append(style.Images, models.Image{URL: url, Position: i})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&style).Error; err != nil {
			return err
		}
		tags, err := UpsertTags(tx, req.Tags)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&style).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadResponse(style.ID)
}

// GetStyle 조회수를 원자적으로 올리고 나서 읽는다.
func (s *StyleService) GetStyle(styleID uint) (*models.StyleResponse, error) {
	result := s.db.Model(&models.Style{}).Where("id = ?", styleID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound()
	}
	return s.loadResponse(styleID)
}

func (s *StyleService) GetStyles(req *models.StyleListRequest) (*models.PagedResponse, error) {
	query := s.db.Model(&models.Style{})

	if req.Keyword != "" {
		kw := "%" + strings.ToLower(req.Keyword) + "%"
		tagSub := s.db.Table("style_tags").
			Select("style_tags.style_id").
			Joins("JOIN tags ON tags.id = style_tags.tag_id").
			Where("LOWER(tags.name) LIKE ?", kw)

		switch req.SearchBy {
		case "title":
			query = query.Where("LOWER(title) LIKE ?", kw)
		case "nickname":
			query = query.Where("LOWER(nickname) LIKE ?", kw)
		case "description":
			query = query.Where("LOWER(description) LIKE ?", kw)
		case "tag":
			query = query.Where("id IN (?)", tagSub)
		default:
			query = query.Where(
				"LOWER(title) LIKE ? OR LOWER(nickname) LIKE ? OR LOWER(description) LIKE ? OR id IN (?)",
				kw, kw, kw, tagSub)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := "created_at DESC"
	switch req.SortBy {
	case "mostViewed":
		orderBy = "view_count DESC"
	case "mostCurated":
		orderBy = "curation_count DESC"
	}

	var styles []models.Style
	offset := (req.Page - 1) * req.PageSize
	err := query.Preload("Categories").Preload("Images").Preload("Tags").
		Order(orderBy).Limit(req.PageSize).Offset(offset).Find(&styles).Error
	if err != nil {
		return nil, err
	}

	data := make([]*models.StyleResponse, 0, len(styles))
	for i := range styles {
		data = append(data, toStyleResponse(&styles[i]))
	}

	return &models.PagedResponse{
		CurrentPage:    req.Page,
		TotalPages:     int(math.Ceil(float64(total) / float64(req.PageSize))),
		TotalItemCount: int(total),
		Data:           data,
	}, nil
}

func (s *StyleService) UpdateStyle(styleID uint, req *models.StyleUpdateRequest) (*models.StyleResponse, error) {
	var style models.Style
	if err := s.db.Preload("Tags").First(&style, styleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound()
		}
		return nil, err
	}
	if !utils.VerifyPassword(req.Password, style.Password) {
		return nil, apperrors.Forbidden()
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Nickname != nil {
			updates["nickname"] = *req.Nickname
		}
		if req.Content != nil {
			updates["content"] = *req.Content
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&style).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Categories != nil {
			if err := tx.Where("style_id = ?", style.ID).Delete(&models.Category{}).Error; err != nil {
				return err
			}
			for _, cat := range *req.Categories {
				category := models.Category{
					StyleID: style.ID,
					Type:    cat.Type,
					Name:    cat.Name,
					Brand:   cat.Brand,
					Price:   cat.Price,
				}
				if err := tx.Create(&category).Error; err != nil {
					return err
				}
			}
		}

		if req.ImageURLs != nil {
			if err := tx.Where("style_id = ?", style.ID).Delete(&models.Image{}).Error; err != nil {
				return err
			}
			for i, url := range *req.ImageURLs {
				image := models.Image{StyleID: style.ID, URL: url, Position: i}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
		}

		if req.Tags != nil {
			oldIDs := make([]uint, 0, len(style.Tags))
			for _, tag := range style.Tags {
				oldIDs = append(oldIDs, tag.ID)
			}
			if err := ReleaseTags(tx, oldIDs); err != nil {
				return err
			}
			if err := tx.Model(&style).Association("Tags").Clear(); err != nil {
				return err
			}
			tags, err := UpsertTags(tx, *req.Tags)
			if err != nil {
				return err
			}
			if len(tags) > 0 {
				if err := tx.Model(&style).Association("Tags").Append(tags); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadResponse(styleID)
}

// DeleteStyle 하위 큐레이션과 답글, 카테고리, 이미지, 태그 참조까지
// 하나의 트랜잭션으로 정리한다. 일부만 지워진 상태로 남지 않는다.
func (s *StyleService) DeleteStyle(styleID uint, password string) error {
	var style models.Style
	if err := s.db.Preload("Tags").First(&style, styleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound()
		}
		return err
	}
	if !utils.VerifyPassword(password, style.Password) {
		return apperrors.Forbidden()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var curationIDs []uint
		if err := tx.Model(&models.Curation{}).Where("style_id = ?", style.ID).
			Pluck("id", &curationIDs).Error; err != nil {
			return err
		}
		if len(curationIDs) > 0 {
			if err := tx.Where("curation_id IN ?", curationIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("style_id = ?", style.ID).Delete(&models.Curation{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("style_id = ?", style.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("style_id = ?", style.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}

		tagIDs := make([]uint, 0, len(style.Tags))
		for _, tag := range style.Tags {
			tagIDs = append(tagIDs, tag.ID)
		}
		if err := ReleaseTags(tx, tagIDs); err != nil {
			return err
		}
		if err := tx.Model(&style).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Delete(&style).Error
	})
}

func (s *StyleService) loadResponse(styleID uint) (*models.StyleResponse, error) {
	var style models.Style
	err := s.db.Preload("Categories").Preload("Images").Preload("Tags").
		First(&style, styleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound()
		}
		return nil, err
	}
	return toStyleResponse(&style), nil
}

func toStyleResponse(style *models.Style) *models.StyleResponse {
	resp := &models.StyleResponse{
		ID:            style.ID,
		Name:          style.Name,
		Title:         style.Title,
		Description:   style.Description,
		Content:       style.Content,
		Nickname:      style.Nickname,
		ViewCount:     style.ViewCount,
		CurationCount: style.CurationCount,
		Categories:    make([]models.CategoryInput, 0, len(style.Categories)),
		Tags:          make([]string, 0, len(style.Tags)),
		ImageURLs:     make([]string, 0, len(style.Images)),
		CreatedAt:     style.CreatedAt,
	}
	for _, cat := range style.Categories {
		resp.Categories = append(resp.Categories, models.CategoryInput{
			Type:  cat.Type,
			Name:  cat.Name,
			Brand: cat.Brand,
			Price: cat.Price,
		})
	}
	for _, tag := range style.Tags {
		resp.Tags = append(resp.Tags, tag.Name)
	}
	images := style.Images
	sort.Slice(images, func(i, j int) bool { return images[i].Position < images[j].Position })
	for _, image := range images {
		resp.ImageURLs = append(resp.ImageURLs, image.URL)
	}
	if len(resp.ImageURLs) > 0 {
		resp.Thumbnail = resp.ImageURLs[0]
	}
	return resp
}
