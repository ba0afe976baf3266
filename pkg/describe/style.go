package describe

import (
	"strings"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

// Fallbacks used when a style attribute is absent, mixed, or not applicable
// to the node kind.
const (
	fallbackZeroPx      = "0px"
	fallbackTransparent = "transparent"
	fallbackNormal      = "normal"
	fallbackAuto        = "auto"
	fallbackUnknown     = "Unknown"
	fallbackAlignment   = "LEFT"
)

// BorderWidth returns the node's stroke weight as a pixel value, or "0px"
// when the weight is absent or mixed.
func BorderWidth(n *figma.Node) string {
	w, ok := n.StrokeWeight.Get()
	if !ok {
		return fallbackZeroPx
	}
	return FormatNumber(w) + "px"
}

// BorderColor returns the first solid stroke paint as an rgba() string, or
// "transparent" when the stroke list is absent, mixed, or has no solid entry.
func BorderColor(n *figma.Node) string {
	return firstSolid(n.Strokes)
}

// BorderRadius returns the node's corner radius as a pixel value, or "0px"
// when the radius is absent or mixed.
func BorderRadius(n *figma.Node) string {
	r, ok := n.CornerRadius.Get()
	if !ok {
		return fallbackZeroPx
	}
	return FormatNumber(r) + "px"
}

// BackgroundColor returns the first solid fill paint as an rgba() string, or
// "transparent" when the fill list is absent, mixed, or has no solid entry.
// Text color uses the same fill-list convention, so text rendering reuses
// this extractor.
func BackgroundColor(n *figma.Node) string {
	return firstSolid(n.Fills)
}

// firstSolid extracts the first solid entry of a paint list, honoring the
// paint's own opacity (default 1).
func firstSolid(v figma.Value[[]figma.Paint]) string {
	paints, ok := v.Get()
	if !ok {
		return fallbackTransparent
	}
	for _, p := range paints {
		if p.Type == figma.PaintSolid {
			return FormatRGBA(p.Color, p.Alpha())
		}
	}
	return fallbackTransparent
}

// PaddingOf returns the node's four padding values as
// "<top>px <right>px <bottom>px <left>px", or "0px" when the node kind has
// no padding attributes at all.
func PaddingOf(n *figma.Node) string {
	p := n.Padding
	if p == nil {
		return fallbackZeroPx
	}
	sides := []float64{p.Top, p.Right, p.Bottom, p.Left}
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = FormatNumber(s) + "px"
	}
	return strings.Join(parts, " ")
}

// Shadows returns one formatted string per visible drop shadow, in effect
// list order: "<offsetX>px <offsetY>px <blurRadius>px <rgba-color>".
// Invisible effects and non-shadow effects yield no entry.
func Shadows(n *figma.Node) []string {
	var out []string
	for _, e := range n.Effects {
		if e.Type != figma.EffectDropShadow || !e.Visible {
			continue
		}
		c := figma.RGB{R: e.Color.R, G: e.Color.G, B: e.Color.B}
		out = append(out,
			FormatNumber(e.Offset.X)+"px "+
				FormatNumber(e.Offset.Y)+"px "+
				FormatNumber(e.Radius)+"px "+
				FormatRGBA(c, e.Color.A))
	}
	return out
}

// fontFamily and fontStyle degrade to "Unknown" when the font reference is
// absent or mixed.
func fontFamily(n *figma.Node) string {
	f, ok := n.Font.Get()
	if !ok {
		return fallbackUnknown
	}
	return f.Family
}

func fontStyle(n *figma.Node) string {
	f, ok := n.Font.Get()
	if !ok {
		return fallbackUnknown
	}
	return f.Style
}

// fontSize renders the font size as a plain number, or "Unknown" when absent
// or mixed.
func fontSize(n *figma.Node) string {
	s, ok := n.FontSize.Get()
	if !ok {
		return fallbackUnknown
	}
	return FormatNumber(s)
}

// textAlignment returns the horizontal alignment, defaulting to "LEFT".
func textAlignment(n *figma.Node) string {
	a, ok := n.TextAlign.Get()
	if !ok || a == "" {
		return fallbackAlignment
	}
	return a
}

// lineHeight renders a line height: "auto" for auto (and for absent or mixed
// values), "<value><unit>" for fixed units, and a plain rounded number for a
// unitless multiplier.
func lineHeight(n *figma.Node) string {
	lh, ok := n.LineHeight.Get()
	if !ok {
		return fallbackAuto
	}
	switch lh.Unit {
	case figma.UnitAuto:
		return fallbackAuto
	case figma.UnitPixels:
		return FormatNumber(lh.Value) + "px"
	case figma.UnitPercent:
		return FormatNumber(lh.Value) + "%"
	default:
		return FormatNumber(lh.Value)
	}
}

// letterSpacing renders a letter spacing: "<value><unit>" for fixed units, a
// plain rounded number for unitless values, and "normal" when absent or
// mixed.
func letterSpacing(n *figma.Node) string {
	ls, ok := n.LetterSpacing.Get()
	if !ok {
		return fallbackNormal
	}
	switch ls.Unit {
	case figma.UnitPixels:
		return FormatNumber(ls.Value) + "px"
	case figma.UnitPercent:
		return FormatNumber(ls.Value) + "%"
	default:
		return FormatNumber(ls.Value)
	}
}
