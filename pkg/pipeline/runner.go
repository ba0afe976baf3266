package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/cache"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/describe"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/observability"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/prompt"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → describe → assemble pipeline.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	// Stage 1: Decode
	decodeStart := time.Now()
	observability.Pipeline().OnDecodeStart(ctx, len(data))
	nodes, err := figma.DecodeSelection(data)
	decodeTime := time.Since(decodeStart)
	observability.Pipeline().OnDecodeComplete(ctx, len(nodes), decodeTime, err)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	logger.Info("decoded selection",
		"nodes", len(nodes),
		"bytes", len(data),
		"duration", decodeTime)

	result, err := r.ExecuteNodes(ctx, nodes, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.DecodeTime = decodeTime
	return result, nil
}

// ExecuteNodes runs describe → assemble on an already-decoded selection.
// The selection is narrowed to recognized, visible nodes first; an empty
// result after narrowing yields the fixed no-selection notice instead of an
// error.
func (r *Runner) ExecuteNodes(ctx context.Context, nodes []*figma.Node, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	filtered := describe.FilterSelection(nodes)
	if len(filtered) == 0 {
		logger.Info("nothing to render", "selected", len(nodes))
		return &Result{Prompt: prompt.NoSelectionNotice}, nil
	}

	result := &Result{Nodes: filtered}
	result.Stats.NodeCount = len(filtered)
	result.Stats.TreeSize = countNodes(filtered)

	// Stage 2: Describe
	describeStart := time.Now()
	layout, layoutHit, err := r.DescribeWithCacheInfo(ctx, filtered, opts)
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	result.Layout = layout
	result.SelectionHash = selectionHash(filtered)
	result.Stats.DescribeTime = time.Since(describeStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("rendered layout",
		"nodes", result.Stats.NodeCount,
		"tree_size", result.Stats.TreeSize,
		"cached", layoutHit,
		"duration", result.Stats.DescribeTime)

	// Stage 3: Assemble
	assembleStart := time.Now()
	text, promptHit, err := r.AssembleWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Prompt = text
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.CacheInfo.PromptHit = promptHit

	logger.Info("assembled prompt",
		"framework", opts.Framework,
		"bytes", len(text),
		"cached", promptHit,
		"duration", result.Stats.AssembleTime)

	return result, nil
}

// DescribeWithCacheInfo renders layout text with caching and returns cache
// hit info.
func (r *Runner) DescribeWithCacheInfo(ctx context.Context, nodes []*figma.Node, opts Options) (string, bool, error) {
	hash := selectionHash(nodes)
	cacheKey := r.Keyer.LayoutKey(hash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "layout")
			return string(data), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	observability.Pipeline().OnDescribeStart(ctx, len(nodes))
	start := time.Now()
	layout := describe.Describe(nodes)
	observability.Pipeline().OnDescribeComplete(ctx, len(nodes), time.Since(start))

	if err := r.Cache.Set(ctx, cacheKey, []byte(layout), cache.TTLLayout); err == nil {
		observability.Cache().OnCacheSet(ctx, "layout", len(layout))
	}

	return layout, false, nil
}

// Describe is a convenience wrapper that discards the cache hit info.
func (r *Runner) Describe(ctx context.Context, nodes []*figma.Node, opts Options) (string, error) {
	layout, _, err := r.DescribeWithCacheInfo(ctx, nodes, opts)
	return layout, err
}

// AssembleWithCacheInfo assembles the prompt with caching and returns cache
// hit info.
func (r *Runner) AssembleWithCacheInfo(ctx context.Context, layout string, opts Options) (string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", false, err
	}

	layoutHash := cache.Hash([]byte(layout))
	cacheKey := r.Keyer.PromptKey(layoutHash, opts.PromptKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "prompt")
			return string(data), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "prompt")
	}

	observability.Pipeline().OnAssembleStart(ctx, opts.Framework)
	start := time.Now()
	text := prompt.Build(layout, opts.Params())
	observability.Pipeline().OnAssembleComplete(ctx, opts.Framework, len(text), time.Since(start))

	if err := r.Cache.Set(ctx, cacheKey, []byte(text), cache.TTLPrompt); err == nil {
		observability.Cache().OnCacheSet(ctx, "prompt", len(text))
	}

	return text, false, nil
}

// Assemble is a convenience wrapper that discards the cache hit info.
func (r *Runner) Assemble(ctx context.Context, layout string, opts Options) (string, error) {
	text, _, err := r.AssembleWithCacheInfo(ctx, layout, opts)
	return text, err
}

// logger returns the per-run logger: the options override when set, the
// runner's own logger otherwise.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// selectionHash computes the content hash of a filtered selection.
// Node serialization is deterministic (fixed field order), so equal trees
// always share a hash.
func selectionHash(nodes []*figma.Node) string {
	data, _ := json.Marshal(nodes)
	return cache.Hash(data)
}
