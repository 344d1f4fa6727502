package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"recipe-assistant/internal/core/ai/cache"
	"recipe-assistant/internal/core/ai/queue"
	openrouter "recipe-assistant/internal/core/service"
	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Response AI 回應結構
type Response struct {
	Content string
}

// Service AI 服務：整合快取、隊列與 OpenRouter 呼叫
type Service struct {
	config      *config.Config
	openRouter  *openrouter.OpenRouterService
	cacheStore  cache.Store
	queueMgr    *queue.Manager
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 創建 AI 服務並啟動隊列 worker
func NewService(cfg *config.Config, cacheStore cache.Store) (*Service, error) {
	openRouter := openrouter.NewOpenRouterService(cfg)

	queueMgr := queue.NewManager(cfg)
	queueMgr.Start(openRouter.GenerateWithModel)

	return &Service{
		config:     cfg,
		openRouter: openRouter,
		cacheStore: cacheStore,
		queueMgr:   queueMgr,
	}, nil
}

// ProcessRequest 統一對外方法，使用預設模型
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	return s.ProcessWithModel(ctx, prompt, s.config.OpenRouter.Model)
}

// ProcessWithModel 以指定模型處理請求
func (s *Service) ProcessWithModel(ctx context.Context, prompt string, model string) (*Response, error) {
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	// 統一 prompt 格式，確保快取 key 一致
	cacheKey := normalizePrompt(prompt) + "|" + model

	if s.config.Cache.Enabled && s.cacheStore != nil {
		if val, err := s.cacheStore.Get(ctx, cacheKey); err == nil && val != "" {
			return &Response{Content: val}, nil
		}
	}

	resultCh, err := s.queueMgr.Enqueue(ctx, prompt, model)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue request: %w", err)
	}

	var result queue.Result
	select {
	case result = <-resultCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if s.config.Cache.Enabled && s.cacheStore != nil {
		if err := s.cacheStore.Set(ctx, cacheKey, result.Content); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return &Response{Content: result.Content}, nil
}

// GetQueueStatus 獲取隊列狀態
func (s *Service) GetQueueStatus() *queue.Status {
	return s.queueMgr.GetQueueStatus()
}

// Close 關閉隊列與快取
func (s *Service) Close() {
	s.queueMgr.Close()
	if s.cacheStore != nil {
		if err := s.cacheStore.Close(); err != nil {
			common.LogWarn("快取關閉失敗", zap.Error(err))
		}
	}
}

// normalizePrompt 去除多餘空白、tab、換行
func normalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(prompt)), " ")
}

// checkRequestRate 檢查請求頻率
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}
