package services

import (
	"net/http"
	"testing"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func curationCount(t *testing.T, db *gorm.DB, styleID uint) (denormalized int, live int64) {
	t.Helper()

	var style models.Style
	require.NoError(t, db.First(&style, styleID).Error)
	require.NoError(t, db.Model(&models.Curation{}).Where("style_id = ?", styleID).Count(&live).Error)
	return style.CurationCount, live
}

func TestCurationCountStaysConsistent(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	svc := NewCurationService(db)

	first := createTestCuration(t, db, style.ID, "큐레이터1", "pw1111")
	createTestCuration(t, db, style.ID, "큐레이터2", "pw2222")
	createTestCuration(t, db, style.ID, "큐레이터3", "pw3333")

	denorm, live := curationCount(t, db, style.ID)
	assert.Equal(t, 3, denorm)
	assert.EqualValues(t, 3, live)

	require.NoError(t, svc.DeleteCuration(first.ID, "pw1111"))

	denorm, live = curationCount(t, db, style.ID)
	assert.Equal(t, 2, denorm)
	assert.EqualValues(t, 2, live)
}

func TestCreateCurationStyleMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewCurationService(db).CreateCuration(999, &models.CurationCreateRequest{
		Nickname:          "큐레이터",
		Password:          "pw1234",
		Content:           "좋아요",
		Trendy:            intPtr(5),
		Personality:       intPtr(5),
		Practicality:      intPtr(5),
		CostEffectiveness: intPtr(5),
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestUpdateCurationPassword(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "pw1234")
	svc := NewCurationService(db)

	_, err := svc.UpdateCuration(curation.ID, &models.CurationUpdateRequest{
		Password: "틀린비밀번호",
		Content:  strPtr("수정"),
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	updated, err := svc.UpdateCuration(curation.ID, &models.CurationUpdateRequest{
		Password: "pw1234",
		Content:  strPtr("수정된 내용"),
		Trendy:   intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "수정된 내용", updated.Content)
	assert.Equal(t, 10, updated.Trendy)
	// 넘기지 않은 점수는 그대로
	assert.Equal(t, 7, updated.Personality)
}

func TestUpdateCurationMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewCurationService(db).UpdateCuration(42, &models.CurationUpdateRequest{Password: "pw"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestDeleteCurationRemovesReply(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "pw1234")

	_, err := NewCommentService(db).CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "고맙습니다",
		Password: "abc123",
	})
	require.NoError(t, err)

	require.NoError(t, NewCurationService(db).DeleteCuration(curation.ID, "pw1234"))

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Where("curation_id = ?", curation.ID).Count(&comments).Error)
	assert.EqualValues(t, 0, comments)
}

func TestGetCurationsIncludesLatestComment(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	withReply := createTestCuration(t, db, style.ID, "큐레이터1", "pw1111")
	createTestCuration(t, db, style.ID, "큐레이터2", "pw2222")

	_, err := NewCommentService(db).CreateComment(withReply.ID, &models.CommentCreateRequest{
		Content:  "감사합니다",
		Password: "abc123",
	})
	require.NoError(t, err)

	page, err := NewCurationService(db).GetCurations(style.ID, &models.CurationListRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalItemCount)

	items := page.Data.([]models.CurationListItem)
	require.Len(t, items, 2)
	for _, item := range items {
		if item.ID == withReply.ID {
			comment, ok := item.Comment.(*models.CommentResponse)
			require.True(t, ok)
			assert.Equal(t, "작성자", comment.Nickname)
		} else {
			assert.Equal(t, struct{}{}, item.Comment)
		}
	}
}

func TestGetCurationsSearch(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	createTestCuration(t, db, style.ID, "Minji", "pw1111")
	createTestCuration(t, db, style.ID, "Haru", "pw2222")

	page, err := NewCurationService(db).GetCurations(style.ID, &models.CurationListRequest{
		Page: 1, PageSize: 10, SearchBy: "nickname", Keyword: "min",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItemCount)
}
