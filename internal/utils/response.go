package utils

import (
	"errors"
	"net/http"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/apperrors"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

func BadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "잘못된 요청입니다"})
}

// Error 서비스에서 올라온 에러를 응답으로 변환하는 단일 지점.
// AppError가 아니면 전부 500 처리하고 원인은 서버 로그에만 남긴다.
func Error(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, models.ErrorResponse{Message: appErr.Message})
		return
	}

	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "서버 에러가 발생했습니다"})
}
