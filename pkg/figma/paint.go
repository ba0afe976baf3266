package figma

import "encoding/json"

// Paint types as serialized by the plugin.
const (
	PaintSolid = "SOLID"
)

// Effect types as serialized by the plugin.
const (
	EffectDropShadow = "DROP_SHADOW"
)

// RGB is a color with normalized (0–1) channels.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGBA is a color with normalized (0–1) channels and an alpha component.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is one entry of a node's fill or stroke list.
// Only solid paints carry a color; gradient and image paints are decoded but
// skipped by the style extractors.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"` // nil means visible
	Color   RGB      `json:"color"`
	Opacity *float64 `json:"opacity,omitempty"` // nil means 1
}

// IsVisible reports whether the paint should be considered for rendering.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Alpha returns the paint's opacity, defaulting to 1 when unset.
func (p Paint) Alpha() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is one entry of a node's effects list (shadows, blurs).
type Effect struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Color   RGBA    `json:"color"`
	Offset  Vector  `json:"offset"`
	Radius  float64 `json:"radius"`
}

// effectJSON mirrors Effect with a pointer visibility so an absent field
// defaults to visible, matching the Paint convention.
type effectJSON struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible"`
	Color   RGBA    `json:"color"`
	Offset  Vector  `json:"offset"`
	Radius  float64 `json:"radius"`
}

// UnmarshalJSON decodes an effect, defaulting visibility to true.
func (e *Effect) UnmarshalJSON(data []byte) error {
	var raw effectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Effect{
		Type:    raw.Type,
		Visible: raw.Visible == nil || *raw.Visible,
		Color:   raw.Color,
		Offset:  raw.Offset,
		Radius:  raw.Radius,
	}
	return nil
}

// FontName identifies a font family and style.
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// Length units used by line height and letter spacing.
const (
	UnitAuto    = "AUTO"
	UnitPixels  = "PIXELS"
	UnitPercent = "PERCENT"
	UnitRaw     = "RAW" // unitless multiplier
)

// LineHeight is a text line height: auto, a fixed unit, or a unitless
// multiplier.
type LineHeight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value,omitempty"`
}

// LetterSpacing is a text letter spacing: a fixed unit or a unitless value.
type LetterSpacing struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Layout modes for auto-layout containers.
const (
	LayoutNone       = "NONE"
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
)
