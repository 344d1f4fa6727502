package cache

import (
	"context"

	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 快取後端介面：記憶體版與 Redis 版共用
type Store interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt string, value string) error
	Close() error
}

// NewStore 依設定選擇快取後端
// 設定了 redis.addr 時優先使用 Redis，連線失敗則退回記憶體快取；
// 快取關閉時返回 nil
func NewStore(cfg *config.Config) Store {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	if cfg.Redis.Addr != "" {
		store, err := NewRedisStore(cfg)
		if err == nil {
			return store
		}
		common.LogWarn("Redis 連線失敗，退回記憶體快取",
			zap.Error(err),
			zap.String("addr", cfg.Redis.Addr),
		)
	}

	if m := NewManager(cfg); m != nil {
		return m
	}
	return nil
}
