package handlers

import (
	"errors"
	"net/http"

	"recipe-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteError 依錯誤類型決定狀態碼與回應格式
func WriteError(c *gin.Context, err error) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, gin.H{
			"error": customErr.Message,
			"code":  customErr.Code,
		})
		return
	}

	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogError("請求處理失敗",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": common.ErrInternalError.Message,
		"code":  common.ErrInternalError.Code,
	})
}

// WriteBindError 請求格式錯誤的統一回應
func WriteBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": common.ErrInvalidRequest.Message,
		"code":  common.ErrInvalidRequest.Code,
	})
}
