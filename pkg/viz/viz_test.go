package viz

import (
	"strings"
	"testing"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

func TestToDOT(t *testing.T) {
	nodes := []*figma.Node{
		{
			Kind: figma.KindFrame, Name: "Card", Visible: true,
			Width: 320, Height: 200,
			Children: []*figma.Node{
				{Kind: figma.KindText, Name: "Title", Visible: true},
				{Kind: figma.KindRectangle, Name: "Hidden", Visible: false},
			},
		},
	}

	dot := ToDOT(nodes, Options{})

	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph:\n%s", dot)
	}
	for _, want := range []string{
		`label="FRAME\nCard"`,
		`label="TEXT\nTitle"`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Invisible nodes get the dashed grey treatment.
	if !strings.Contains(dot, "dashed") {
		t.Error("invisible node not rendered dashed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	nodes := []*figma.Node{
		{Kind: figma.KindRectangle, Name: "Box", Visible: true, Width: 100.5, Height: 40, X: 10, Y: 20},
	}

	dot := ToDOT(nodes, Options{Detailed: true})

	if !strings.Contains(dot, `100.5x40 @ (10, 20)`) {
		t.Errorf("detailed label missing geometry:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if !strings.Contains(dot, "digraph G {") {
		t.Errorf("empty selection should still produce a valid digraph:\n%s", dot)
	}
}
