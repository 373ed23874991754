package services

import (
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) GetTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetPopularTags 참조 수 기준 상위 10개
func (s *TagService) GetPopularTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("count DESC").Limit(10).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// UpsertTags 이름으로 태그를 찾거나 만들고 count를 1씩 올린다.
// 스타일 생성/수정 트랜잭션 안에서 호출된다.
func UpsertTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	seen := make(map[string]bool, len(names))
	tags := make([]models.Tag, 0, len(names))

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag := models.Tag{Name: name}
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		if err := tx.Model(&models.Tag{}).Where("id = ?", tag.ID).
			UpdateColumn("count", gorm.Expr("count + 1")).Error; err != nil {
			return nil, err
		}
		tag.Count++
		tags = append(tags, tag)
	}
	return tags, nil
}

// ReleaseTags count를 1씩 내린다. 0 아래로는 내려가지 않는다.
func ReleaseTags(tx *gorm.DB, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return tx.Model(&models.Tag{}).
		Where("id IN ? AND count > 0", tagIDs).
		UpdateColumn("count", gorm.Expr("count - 1")).Error
}
