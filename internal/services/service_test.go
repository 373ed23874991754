package services

import (
	"fmt"
	"testing"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/database"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func createTestStyle(t *testing.T, db *gorm.DB, nickname, password string, tags ...string) *models.StyleResponse {
	t.Helper()

	style, err := NewStyleService(db).CreateStyle(&models.StyleCreateRequest{
		Name:     "테스트 스타일",
		Title:    "오늘의 코디",
		Nickname: nickname,
		Password: password,
		Content:  "데일리룩입니다",
		Categories: []models.CategoryInput{
			{Type: "top", Name: "옥스포드 셔츠", Brand: "유니클로", Price: 39900},
		},
		Tags:      tags,
		ImageURLs: []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
	})
	require.NoError(t, err)
	return style
}

func createTestCuration(t *testing.T, db *gorm.DB, styleID uint, nickname, password string) *models.CurationResponse {
	t.Helper()

	curation, err := NewCurationService(db).CreateCuration(styleID, &models.CurationCreateRequest{
		Nickname:          nickname,
		Password:          password,
		Content:           "깔끔하네요",
		Trendy:            intPtr(8),
		Personality:       intPtr(7),
		Practicality:      intPtr(9),
		CostEffectiveness: intPtr(6),
	})
	require.NoError(t, err)
	return curation
}
