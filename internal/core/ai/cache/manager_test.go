package cache

import (
	"context"
	"testing"
	"time"

	"recipe-assistant/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         2,
			TTL:             time.Minute,
			CleanupInterval: time.Hour,
		},
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(testConfig())
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt-a", "response-a"))

	got, err := m.Get(ctx, "prompt-a")
	require.NoError(t, err)
	assert.Equal(t, "response-a", got)
}

func TestManagerGetMiss(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Close()

	_, err := m.Get(context.Background(), "never-set")
	assert.Error(t, err)
}

func TestManagerTTLExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.TTL = time.Millisecond
	m := NewManager(cfg)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "prompt-a", "response-a"))

	time.Sleep(5 * time.Millisecond)

	_, err := m.Get(ctx, "prompt-a")
	assert.Error(t, err)
}

func TestManagerEvictsWhenFull(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))
	require.NoError(t, m.Set(ctx, "c", "3"))

	stats := m.GetStats()
	assert.LessOrEqual(t, stats["size"], 2)
}

func TestManagerCloseStopsCleanup(t *testing.T) {
	m := NewManager(testConfig())
	require.NotNil(t, m)

	require.NoError(t, m.Close())

	select {
	case <-m.done:
	default:
		t.Fatal("cleanup goroutine not signalled to stop")
	}
}

func TestManagerDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	assert.Nil(t, NewManager(cfg))
}

func TestNewStoreSelectsMemory(t *testing.T) {
	cfg := testConfig()
	store := NewStore(cfg)
	require.NotNil(t, store)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "prompt", "value"))
	got, err := store.Get(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestNewStoreDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	assert.Nil(t, NewStore(cfg))
}
