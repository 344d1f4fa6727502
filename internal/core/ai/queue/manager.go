package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Request 隊列請求
type Request struct {
	Context context.Context
	Prompt  string
	Model   string
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Content string
	Error   error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Handler 實際執行 LLM 呼叫的函數，由 worker 調用
type Handler func(ctx context.Context, prompt string, model string) (string, error)

// Manager 隊列管理器：固定數量的 worker 從隊列取出請求依序呼叫 LLM
type Manager struct {
	config    *config.Config
	queue     chan *Request
	done      chan struct{}
	processed int64
	startOnce sync.Once
}

// NewManager 創建新的隊列管理器
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config: cfg,
		queue:  make(chan *Request, cfg.Queue.MaxSize),
		done:   make(chan struct{}),
	}
}

// Start 啟動 worker 池，重複呼叫只生效一次
func (m *Manager) Start(handler Handler) {
	m.startOnce.Do(func() {
		for i := 0; i < m.config.Queue.Workers; i++ {
			go m.worker(i, handler)
		}
		common.LogInfo("隊列 worker 已啟動",
			zap.Int("workers", m.config.Queue.Workers),
			zap.Int("max_queue_size", m.config.Queue.MaxSize),
		)
	})
}

// worker 逐一處理隊列請求
func (m *Manager) worker(id int, handler Handler) {
	for {
		select {
		case req, ok := <-m.queue:
			if !ok {
				return
			}
			// 請求可能在排隊期間被取消
			if err := req.Context.Err(); err != nil {
				req.Result <- Result{Error: err}
				continue
			}
			content, err := handler(req.Context, req.Prompt, req.Model)
			atomic.AddInt64(&m.processed, 1)
			req.Result <- Result{Content: content, Error: err}
		case <-m.done:
			return
		}
	}
}

// Enqueue 將請求加入隊列，返回接收結果的 channel
func (m *Manager) Enqueue(ctx context.Context, prompt string, model string) (chan Result, error) {
	// 檢查隊列容量
	if len(m.queue) >= m.config.Queue.MaxSize {
		return nil, fmt.Errorf("queue is full")
	}

	req := &Request{
		Context: ctx,
		Prompt:  prompt,
		Model:   model,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- req:
		common.LogDebug("Request enqueued",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.config.Queue.MaxSize),
		)
		return req.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, fmt.Errorf("queue manager is closed")
	}
}

// GetQueueStatus 獲取隊列狀態
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.config.Queue.MaxSize,
		Workers:        m.config.Queue.Workers,
	}
}

// Close 關閉隊列管理器
func (m *Manager) Close() {
	close(m.done)
}
