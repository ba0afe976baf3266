package describe

import (
	"reflect"
	"testing"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

func solid(c figma.RGB, opacity float64) figma.Paint {
	return figma.Paint{Type: figma.PaintSolid, Color: c, Opacity: &opacity}
}

func TestBorderWidth(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"present", figma.Node{StrokeWeight: figma.Of(1.5)}, "1.5px"},
		{"absent", figma.Node{}, "0px"},
		{"mixed", figma.Node{StrokeWeight: figma.Mixed[float64]()}, "0px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorderWidth(&tt.node); got != tt.want {
				t.Errorf("BorderWidth() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBorderColor(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{
			name: "first solid entry",
			node: figma.Node{Strokes: figma.Of([]figma.Paint{solid(figma.RGB{R: 1}, 1)})},
			want: "rgba(255, 0, 0, 1)",
		},
		{
			name: "skips non-solid entries",
			node: figma.Node{Strokes: figma.Of([]figma.Paint{
				{Type: "GRADIENT_LINEAR"},
				solid(figma.RGB{B: 1}, 0.5),
			})},
			want: "rgba(0, 0, 255, 0.5)",
		},
		{
			name: "paint opacity defaults to 1",
			node: figma.Node{Strokes: figma.Of([]figma.Paint{{Type: figma.PaintSolid, Color: figma.RGB{G: 1}}})},
			want: "rgba(0, 255, 0, 1)",
		},
		{"absent", figma.Node{}, "transparent"},
		{"mixed", figma.Node{Strokes: figma.Mixed[[]figma.Paint]()}, "transparent"},
		{"empty list", figma.Node{Strokes: figma.Of([]figma.Paint{})}, "transparent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorderColor(&tt.node); got != tt.want {
				t.Errorf("BorderColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBorderRadius(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"present", figma.Node{CornerRadius: figma.Of(4.0)}, "4px"},
		{"absent", figma.Node{}, "0px"},
		{"mixed", figma.Node{CornerRadius: figma.Mixed[float64]()}, "0px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorderRadius(&tt.node); got != tt.want {
				t.Errorf("BorderRadius() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	node := figma.Node{Fills: figma.Of([]figma.Paint{solid(figma.RGB{R: 1, G: 1, B: 1}, 0.8)})}
	if got := BackgroundColor(&node); got != "rgba(255, 255, 255, 0.8)" {
		t.Errorf("BackgroundColor() = %q, want %q", got, "rgba(255, 255, 255, 0.8)")
	}

	if got := BackgroundColor(&figma.Node{}); got != "transparent" {
		t.Errorf("BackgroundColor() = %q, want %q", got, "transparent")
	}
}

func TestPaddingOf(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"no padding attributes", figma.Node{}, "0px"},
		{
			name: "four sides",
			node: figma.Node{Padding: &figma.Padding{Top: 8, Right: 16, Bottom: 8, Left: 16}},
			want: "8px 16px 8px 16px",
		},
		{
			name: "absent sides default to zero",
			node: figma.Node{Padding: &figma.Padding{Left: 12}},
			want: "0px 0px 0px 12px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaddingOf(&tt.node); got != tt.want {
				t.Errorf("PaddingOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShadows(t *testing.T) {
	shadow := figma.Effect{
		Type:    figma.EffectDropShadow,
		Visible: true,
		Color:   figma.RGBA{A: 0.25},
		Offset:  figma.Vector{X: 0, Y: 4},
		Radius:  8,
	}
	hidden := shadow
	hidden.Visible = false
	blur := figma.Effect{Type: "LAYER_BLUR", Visible: true, Radius: 4}

	tests := []struct {
		name string
		node figma.Node
		want []string
	}{
		{"no effects", figma.Node{}, nil},
		{
			name: "visible drop shadow",
			node: figma.Node{Effects: []figma.Effect{shadow}},
			want: []string{"0px 4px 8px rgba(0, 0, 0, 0.25)"},
		},
		{
			name: "invisible shadow filtered",
			node: figma.Node{Effects: []figma.Effect{hidden}},
			want: nil,
		},
		{
			name: "non-shadow effects filtered, order preserved",
			node: figma.Node{Effects: []figma.Effect{blur, shadow, shadow}},
			want: []string{
				"0px 4px 8px rgba(0, 0, 0, 0.25)",
				"0px 4px 8px rgba(0, 0, 0, 0.25)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shadows(&tt.node); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Shadows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineHeight(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"absent", figma.Node{}, "auto"},
		{"mixed", figma.Node{LineHeight: figma.Mixed[figma.LineHeight]()}, "auto"},
		{"auto unit", figma.Node{LineHeight: figma.Of(figma.LineHeight{Unit: figma.UnitAuto})}, "auto"},
		{"pixels", figma.Node{LineHeight: figma.Of(figma.LineHeight{Unit: figma.UnitPixels, Value: 24})}, "24px"},
		{"percent", figma.Node{LineHeight: figma.Of(figma.LineHeight{Unit: figma.UnitPercent, Value: 150})}, "150%"},
		{"unitless multiplier", figma.Node{LineHeight: figma.Of(figma.LineHeight{Unit: figma.UnitRaw, Value: 1.5})}, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineHeight(&tt.node); got != tt.want {
				t.Errorf("lineHeight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLetterSpacing(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{"absent", figma.Node{}, "normal"},
		{"mixed", figma.Node{LetterSpacing: figma.Mixed[figma.LetterSpacing]()}, "normal"},
		{"pixels", figma.Node{LetterSpacing: figma.Of(figma.LetterSpacing{Unit: figma.UnitPixels, Value: 0.5})}, "0.5px"},
		{"percent", figma.Node{LetterSpacing: figma.Of(figma.LetterSpacing{Unit: figma.UnitPercent, Value: 2})}, "2%"},
		{"unitless", figma.Node{LetterSpacing: figma.Of(figma.LetterSpacing{Unit: figma.UnitRaw, Value: 1.2})}, "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := letterSpacing(&tt.node); got != tt.want {
				t.Errorf("letterSpacing() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFontFallbacks(t *testing.T) {
	n := figma.Node{}
	if got := fontFamily(&n); got != "Unknown" {
		t.Errorf("fontFamily() = %q, want %q", got, "Unknown")
	}
	if got := fontStyle(&n); got != "Unknown" {
		t.Errorf("fontStyle() = %q, want %q", got, "Unknown")
	}

	n.Font = figma.Of(figma.FontName{Family: "Inter", Style: "Bold"})
	if got := fontFamily(&n); got != "Inter" {
		t.Errorf("fontFamily() = %q, want %q", got, "Inter")
	}
	if got := fontStyle(&n); got != "Bold" {
		t.Errorf("fontStyle() = %q, want %q", got, "Bold")
	}
}
