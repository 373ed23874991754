package services

import (
	"net/http"
	"testing"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 답글 인증은 큐레이션이 아니라 스타일 비밀번호를 따른다.
func TestCreateCommentChecksStylePassword(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "스타일작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "xyz")
	svc := NewCommentService(db)

	// 큐레이션 비밀번호로는 실패해야 한다
	_, err := svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "nice",
		Password: "xyz",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	comment, err := svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "nice",
		Password: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "스타일작성자", comment.Nickname)
}

func TestCreateCommentStoresPlaintextPassword(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "xyz")

	created, err := NewCommentService(db).CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "고맙습니다",
		Password: "abc123",
	})
	require.NoError(t, err)

	var stored models.Comment
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "abc123", stored.Password)
}

func TestCreateCommentDuplicate(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "xyz")
	svc := NewCommentService(db)

	_, err := svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "첫 답글",
		Password: "abc123",
	})
	require.NoError(t, err)

	// 비밀번호가 맞아도 두 번째 답글은 거부된다
	_, err = svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "두 번째 답글",
		Password: "abc123",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("curation_id = ?", curation.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCommentCurationMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewCommentService(db).CreateComment(123, &models.CommentCreateRequest{
		Content:  "답글",
		Password: "pw",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

// 수정/삭제는 답글 자신의 비밀번호(평문 저장)로 검증한다.
func TestUpdateAndDeleteCommentOwnPassword(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "xyz")
	svc := NewCommentService(db)

	created, err := svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "원래 내용",
		Password: "abc123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateComment(created.ID, &models.CommentUpdateRequest{
		Content:  "수정",
		Password: "틀린비밀번호",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	updated, err := svc.UpdateComment(created.ID, &models.CommentUpdateRequest{
		Content:  "수정된 내용",
		Password: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "수정된 내용", updated.Content)

	require.NoError(t, svc.DeleteComment(created.ID, "abc123"))

	comments, err := svc.GetComments(curation.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestGetCommentsZeroOrOne(t *testing.T) {
	db := setupTestDB(t)
	style := createTestStyle(t, db, "작성자", "abc123")
	curation := createTestCuration(t, db, style.ID, "큐레이터", "xyz")
	svc := NewCommentService(db)

	comments, err := svc.GetComments(curation.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = svc.CreateComment(curation.ID, &models.CommentCreateRequest{
		Content:  "답글",
		Password: "abc123",
	})
	require.NoError(t, err)

	comments, err = svc.GetComments(curation.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "답글", comments[0].Content)

	_, err = svc.GetComments(999)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
