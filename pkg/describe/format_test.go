package describe

import (
	"math"
	"strconv"
	"testing"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 12, "12"},
		{"trailing zero fraction", 12.0, "12"},
		{"half", 12.5, "12.5"},
		{"two decimals", 12.25, "12.25"},
		{"rounds to two decimals", 3.14159, "3.14"},
		{"rounds up", 2.999, "3"},
		{"float artifact", 0.1 + 0.2, "0.3"},
		{"zero", 0, "0"},
		{"negative", -4.5, "-4.5"},
		{"negative integer", -3.0, "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumberRoundTrip(t *testing.T) {
	// Formatting then re-parsing must stay within half of the rounding step.
	values := []float64{0, 1, 12.345, -7.891, 0.004, 99.995, 1234.5678}
	for _, v := range values {
		got := FormatNumber(v)
		parsed, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("FormatNumber(%v) = %q is not parseable: %v", v, got, err)
		}
		if math.Abs(parsed-v) > 0.005 {
			t.Errorf("FormatNumber(%v) = %q, round-trip error %v exceeds 0.005", v, got, math.Abs(parsed-v))
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"half", 0.5, "50%"},
		{"opaque", 1, "100%"},
		{"transparent", 0, "0%"},
		{"quarter", 0.25, "25%"},
		{"rounds to nearest", 0.333, "33%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(tt.in); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatRGBA(t *testing.T) {
	tests := []struct {
		name    string
		color   figma.RGB
		opacity float64
		want    string
	}{
		{"red opaque", figma.RGB{R: 1}, 1, "rgba(255, 0, 0, 1)"},
		{"black half", figma.RGB{}, 0.5, "rgba(0, 0, 0, 0.5)"},
		{"mid gray", figma.RGB{R: 0.5, G: 0.5, B: 0.5}, 0.25, "rgba(128, 128, 128, 0.25)"},
		{"white transparent", figma.RGB{R: 1, G: 1, B: 1}, 0, "rgba(255, 255, 255, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRGBA(tt.color, tt.opacity); got != tt.want {
				t.Errorf("FormatRGBA(%v, %v) = %q, want %q", tt.color, tt.opacity, got, tt.want)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name  string
		block string
		width int
		want  string
	}{
		{"single line", "a", 2, "  a"},
		{"blank middle line untouched", "a\n\nb", 2, "  a\n\n  b"},
		{"zero width is identity", "a\nb", 0, "a\nb"},
		{"empty block", "", 2, ""},
		{"accumulates", "  a", 2, "    a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.block, tt.width); got != tt.want {
				t.Errorf("Indent(%q, %d) = %q, want %q", tt.block, tt.width, got, tt.want)
			}
		})
	}
}
