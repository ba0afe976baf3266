package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/cache"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/prompt"
)

const sampleExport = `[
	{
		"type": "FRAME",
		"name": "Card",
		"width": 320,
		"height": 200,
		"x": 0,
		"y": 0,
		"layoutMode": "VERTICAL",
		"primaryAxisAlignItems": "MIN",
		"counterAxisAlignItems": "CENTER",
		"children": [
			{
				"type": "TEXT",
				"name": "Title",
				"width": 280,
				"height": 24,
				"x": 20,
				"y": 16,
				"characters": "Hello"
			}
		]
	}
]`

func newTestRunner() *Runner {
	return NewRunner(cache.NewMemoryCache(), nil, nil)
}

func TestExecute(t *testing.T) {
	r := newTestRunner()
	defer r.Close()

	result, err := r.Execute(context.Background(), []byte(sampleExport), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Empty() {
		t.Fatal("Empty() = true for a non-empty selection")
	}
	if !strings.Contains(result.Prompt, "# React Component Generation Prompt") {
		t.Error("prompt missing default framework title")
	}
	if !strings.Contains(result.Prompt, result.Layout) {
		t.Error("prompt does not embed the rendered layout")
	}
	if !strings.HasPrefix(result.Layout, "- Frame (Component Name: Card): 1 children") {
		t.Errorf("layout does not start with the frame line:\n%s", result.Layout)
	}
	if result.Stats.NodeCount != 1 {
		t.Errorf("NodeCount = %d, want 1", result.Stats.NodeCount)
	}
	if result.Stats.TreeSize != 2 {
		t.Errorf("TreeSize = %d, want 2", result.Stats.TreeSize)
	}
	if result.SelectionHash == "" {
		t.Error("SelectionHash is empty")
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.PromptHit {
		t.Error("first run must not report cache hits")
	}
}

func TestExecuteCacheHit(t *testing.T) {
	r := newTestRunner()
	defer r.Close()
	ctx := context.Background()

	first, err := r.Execute(ctx, []byte(sampleExport), Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second, err := r.Execute(ctx, []byte(sampleExport), Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.PromptHit {
		t.Error("second run should hit the prompt cache")
	}
	if second.Prompt != first.Prompt {
		t.Error("cached prompt differs from the original")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	r := newTestRunner()
	defer r.Close()
	ctx := context.Background()

	if _, err := r.Execute(ctx, []byte(sampleExport), Options{}); err != nil {
		t.Fatalf("warm-up Execute: %v", err)
	}

	result, err := r.Execute(ctx, []byte(sampleExport), Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.PromptHit {
		t.Error("Refresh must bypass cached artifacts")
	}
}

func TestExecuteEmptySelection(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty array", `[]`},
		{"only invisible", `[{"type": "FRAME", "name": "Hidden", "visible": false}]`},
		{"only unrecognized", `[{"type": "SLICE", "name": "Export area"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRunner()
			defer r.Close()

			result, err := r.Execute(context.Background(), []byte(tt.data), Options{})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !result.Empty() {
				t.Error("Empty() = false, want true")
			}
			if result.Prompt != prompt.NoSelectionNotice {
				t.Errorf("Prompt = %q, want the no-selection notice", result.Prompt)
			}
			if result.Layout != "" {
				t.Errorf("Layout = %q, want empty", result.Layout)
			}
		})
	}
}

func TestExecuteInvalidJSON(t *testing.T) {
	r := newTestRunner()
	defer r.Close()

	if _, err := r.Execute(context.Background(), []byte(`{"selection": 42}`), Options{}); err == nil {
		t.Error("Execute accepted malformed input")
	}
}

func TestExecuteNodesParamsChangeKey(t *testing.T) {
	r := newTestRunner()
	defer r.Close()
	ctx := context.Background()

	nodes := []*figma.Node{{Kind: figma.KindRectangle, Name: "Box", Visible: true, Opacity: 1, Width: 10, Height: 10}}

	react, err := r.ExecuteNodes(ctx, nodes, Options{Framework: "React"})
	if err != nil {
		t.Fatalf("ExecuteNodes(React): %v", err)
	}
	vue, err := r.ExecuteNodes(ctx, nodes, Options{Framework: "Vue"})
	if err != nil {
		t.Fatalf("ExecuteNodes(Vue): %v", err)
	}

	if react.Prompt == vue.Prompt {
		t.Error("different frameworks produced identical prompts")
	}
	if vue.CacheInfo.PromptHit {
		t.Error("different framework must not hit the other framework's prompt cache")
	}
	if !vue.CacheInfo.LayoutHit {
		t.Error("layout cache should hit regardless of framework")
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Framework != prompt.DefaultFramework {
		t.Errorf("Framework = %q, want %q", opts.Framework, prompt.DefaultFramework)
	}
	if opts.Schema != prompt.SchemaNone {
		t.Errorf("Schema = %q, want %q", opts.Schema, prompt.SchemaNone)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults: %v", err)
	}
}

func TestCountNodes(t *testing.T) {
	roots := []*figma.Node{
		{Kind: figma.KindGroup, Children: []*figma.Node{
			{Kind: figma.KindRectangle},
			{Kind: figma.KindGroup, Children: []*figma.Node{
				{Kind: figma.KindText},
			}},
		}},
		nil,
		{Kind: figma.KindLine},
	}
	if got := countNodes(roots); got != 5 {
		t.Errorf("countNodes = %d, want 5", got)
	}
}
