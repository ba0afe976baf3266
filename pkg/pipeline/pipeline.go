// Package pipeline provides the core prompt-generation pipeline.
//
// This package implements the complete decode → describe → assemble pipeline
// used by both the CLI and the HTTP API. By centralizing this logic, both
// entry points share caching, logging, and default handling.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: parse the plugin's selection export into a node tree
//  2. Describe: render the tree as structured layout text
//  3. Assemble: wrap the layout text in the full code-generation prompt
//
// Describe and Assemble are pure (see [pkg/describe] and [pkg/prompt]); the
// Runner adds caching and structured logging around them without changing
// their semantics.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, exportJSON, pipeline.Options{
//	    Framework: "React",
//	    Schema:    "PostgreSQL",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Prompt)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/cache"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/prompt"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Framework is the requested output framework name.
	Framework string `json:"framework,omitempty"`

	// Schema is an optional database technology keyword, or "none".
	Schema string `json:"schema,omitempty"`

	// Description is a free-form description of what should be built.
	Description string `json:"description,omitempty"`

	// Refresh bypasses cached layout and prompt artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults applies parameter defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	p := o.Params()
	p.SetDefaults()
	o.Framework = p.Framework
	o.Schema = p.Schema

	o.validated = true
	return nil
}

// Params converts the options to prompt assembly parameters.
func (o *Options) Params() prompt.Params {
	return prompt.Params{
		Framework:   o.Framework,
		Schema:      o.Schema,
		Description: o.Description,
	}
}

// PromptKeyOpts returns cache key options for prompt assembly.
func (o *Options) PromptKeyOpts() cache.PromptKeyOpts {
	return cache.PromptKeyOpts{
		Framework:   o.Framework,
		Schema:      o.Schema,
		Description: o.Description,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Prompt is the assembled prompt, or the fixed no-selection notice when
	// the filtered selection is empty.
	Prompt string

	// Layout is the rendered layout text (empty for an empty selection).
	Layout string

	// Nodes are the filtered top-level nodes that fed the renderer.
	Nodes []*figma.Node

	// SelectionHash is the content hash of the filtered selection.
	SelectionHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Empty reports whether the run produced the no-selection notice.
func (r *Result) Empty() bool {
	return len(r.Nodes) == 0
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int           // top-level nodes fed to the renderer
	TreeSize     int           // total nodes in the filtered subtrees
	DecodeTime   time.Duration
	DescribeTime time.Duration
	AssembleTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout text came from cache
	PromptHit bool // Whether the assembled prompt came from cache
}

// countNodes returns the total number of nodes reachable from roots,
// including invisible ones.
func countNodes(roots []*figma.Node) int {
	total := 0
	for _, n := range roots {
		if n == nil {
			continue
		}
		total += 1 + countNodes(n.Children)
	}
	return total
}
