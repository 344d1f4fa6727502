package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-assistant/internal/core/ai/queue"
	"recipe-assistant/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// QueueStatusProvider 提供隊列狀態的介面
type QueueStatusProvider interface {
	GetQueueStatus() *queue.Status
}

// Handler 健康檢查處理器
type Handler struct {
	config *config.Config
	queue  QueueStatusProvider
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, queueProvider QueueStatusProvider) *Handler {
	return &Handler{
		config: cfg,
		queue:  queueProvider,
	}
}

// Response 健康檢查響應
type Response struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Queue     *queue.Status          `json:"queue,omitempty"`
}

// Check 健康檢查
func (h *Handler) Check(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := Response{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.queue != nil {
		response.Queue = h.queue.GetQueueStatus()
	}

	c.JSON(http.StatusOK, response)
}

// Readiness 就緒檢查
func (h *Handler) Readiness(c *gin.Context) {
	// 隊列滿載時視為尚未就緒
	if h.queue != nil {
		status := h.queue.GetQueueStatus()
		if status.QueueLength >= status.MaxQueueSize {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "queue full",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Liveness 存活檢查
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
