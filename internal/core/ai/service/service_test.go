package service

import (
	"context"
	"testing"
	"time"

	"recipe-assistant/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	data map[string]string
	sets int
}

func (f *fakeStore) Get(ctx context.Context, prompt string) (string, error) {
	if v, ok := f.data[prompt]; ok {
		return v, nil
	}
	return "", assert.AnError
}

func (f *fakeStore) Set(ctx context.Context, prompt string, value string) error {
	f.data[prompt] = value
	f.sets++
	return nil
}

func (f *fakeStore) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		OpenRouter: config.OpenRouterConfig{
			Model:   "openai/gpt-3.5-turbo",
			Timeout: time.Second,
		},
		Cache: config.CacheConfig{Enabled: true},
		Queue: config.QueueConfig{Workers: 1, MaxSize: 10},
	}
}

func TestNormalizePrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a pasta recipe", normalizePrompt("  a   pasta\n\trecipe  "))
	assert.Equal(t, normalizePrompt("a pasta recipe"), normalizePrompt("a\npasta\nrecipe"))
}

func TestProcessRequestCacheHit(t *testing.T) {
	store := &fakeStore{data: map[string]string{
		"a pasta recipe|openai/gpt-3.5-turbo": "cached response",
	}}

	svc, err := NewService(testConfig(), store)
	require.NoError(t, err)
	defer svc.queueMgr.Close()

	resp, err := svc.ProcessRequest(context.Background(), "a  pasta\nrecipe")
	require.NoError(t, err)
	assert.Equal(t, "cached response", resp.Content)
	assert.Zero(t, store.sets)
}

func TestProcessRequestRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Window: time.Minute}
	store := &fakeStore{data: map[string]string{
		"a pasta recipe|openai/gpt-3.5-turbo": "cached response",
	}}

	svc, err := NewService(cfg, store)
	require.NoError(t, err)
	defer svc.queueMgr.Close()

	_, err = svc.ProcessRequest(context.Background(), "a pasta recipe")
	require.NoError(t, err)

	_, err = svc.ProcessRequest(context.Background(), "a pasta recipe")
	assert.Error(t, err)
}

func TestQueueStatusExposed(t *testing.T) {
	svc, err := NewService(testConfig(), nil)
	require.NoError(t, err)
	defer svc.queueMgr.Close()

	status := svc.GetQueueStatus()
	require.NotNil(t, status)
	assert.Equal(t, 10, status.MaxQueueSize)
	assert.Equal(t, 1, status.Workers)
}
