package observability

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingPipelineHooks struct {
	NoopPipelineHooks
	describes atomic.Int64
}

func (h *countingPipelineHooks) OnDescribeStart(ctx context.Context, nodeCount int) {
	h.describes.Add(1)
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits atomic.Int64
}

func (h *countingCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.hits.Add(1)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnDecodeStart(ctx, 0)
	Pipeline().OnDescribeComplete(ctx, 3, time.Millisecond)
	Pipeline().OnAssembleComplete(ctx, "React", 100, time.Millisecond)
	Cache().OnCacheMiss(ctx, "layout")
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingPipelineHooks{}
	SetPipelineHooks(h)

	Pipeline().OnDescribeStart(context.Background(), 5)
	Pipeline().OnDescribeStart(context.Background(), 5)

	if got := h.describes.Load(); got != 2 {
		t.Errorf("describe events = %d, want 2", got)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(context.Background(), "prompt")

	if got := h.hits.Load(); got != 1 {
		t.Errorf("hit events = %d, want 1", got)
	}
}

func TestSetNilHookIsIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetPipelineHooks(nil)
	if Pipeline() == nil {
		t.Error("nil registration must keep the previous hooks")
	}
}
