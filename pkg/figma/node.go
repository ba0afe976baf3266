package figma

import "encoding/json"

// Kind discriminates the node union. Values match the plugin's node type
// strings, so unrecognized kinds pass through verbatim and can be reported.
type Kind string

// Node kinds recognized by the renderer.
const (
	KindRectangle    Kind = "RECTANGLE"
	KindEllipse      Kind = "ELLIPSE"
	KindLine         Kind = "LINE"
	KindText         Kind = "TEXT"
	KindVector       Kind = "VECTOR"
	KindGroup        Kind = "GROUP"
	KindFrame        Kind = "FRAME"
	KindComponent    Kind = "COMPONENT"
	KindComponentSet Kind = "COMPONENT_SET"
	KindInstance     Kind = "INSTANCE"
	KindSection      Kind = "SECTION"
)

// recognizedKinds is the set of kinds the renderer has a variant for.
var recognizedKinds = map[Kind]bool{
	KindRectangle:    true,
	KindEllipse:      true,
	KindLine:         true,
	KindText:         true,
	KindVector:       true,
	KindGroup:        true,
	KindFrame:        true,
	KindComponent:    true,
	KindComponentSet: true,
	KindInstance:     true,
	KindSection:      true,
}

// Recognized reports whether the kind has a rendering variant.
func (k Kind) Recognized() bool { return recognizedKinds[k] }

// IsContainer reports whether the kind carries children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindGroup, KindFrame, KindComponent, KindComponentSet, KindInstance, KindSection:
		return true
	}
	return false
}

// IsFrameLike reports whether the kind renders with auto-layout information
// (frames and the component family).
func (k Kind) IsFrameLike() bool {
	switch k {
	case KindFrame, KindComponent, KindComponentSet, KindInstance:
		return true
	}
	return false
}

// Padding holds the four auto-layout padding values of a container.
// A nil *Padding on a node means the kind has no padding attributes at all.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Node is one node of the design tree. The tree is owned by the plugin host;
// this package only ever reads it.
type Node struct {
	Kind    Kind
	Name    string
	Visible bool

	X       float64
	Y       float64
	Width   float64
	Height  float64
	Opacity float64 // 0–1

	// Children is set only for container kinds, in document order.
	Children []*Node

	// Geometry styling.
	Fills        Value[[]Paint]
	Strokes      Value[[]Paint]
	StrokeWeight Value[float64]
	CornerRadius Value[float64]
	Padding      *Padding
	Effects      []Effect

	// Text styling.
	Characters    string
	Font          Value[FontName]
	FontSize      Value[float64]
	LineHeight    Value[LineHeight]
	LetterSpacing Value[LetterSpacing]
	TextAlign     Value[string]

	// Auto-layout.
	LayoutMode       string
	PrimaryAxisAlign string
	CounterAxisAlign string
}

// nodeJSON mirrors the plugin's wire field names. Visibility and opacity use
// pointers so their defaults (visible, fully opaque) survive absent fields.
type nodeJSON struct {
	Type    Kind     `json:"type"`
	Name    string   `json:"name"`
	Visible *bool    `json:"visible"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Opacity *float64 `json:"opacity"`

	Children []*Node `json:"children"`

	Fills        Value[[]Paint]  `json:"fills"`
	Strokes      Value[[]Paint]  `json:"strokes"`
	StrokeWeight Value[float64]  `json:"strokeWeight"`
	CornerRadius Value[float64]  `json:"cornerRadius"`
	Padding      *Padding        `json:"padding"`
	Effects      []Effect        `json:"effects"`

	Characters    string               `json:"characters"`
	FontName      Value[FontName]      `json:"fontName"`
	FontSize      Value[float64]       `json:"fontSize"`
	LineHeight    Value[LineHeight]    `json:"lineHeight"`
	LetterSpacing Value[LetterSpacing] `json:"letterSpacing"`
	TextAlign     Value[string]        `json:"textAlignHorizontal"`

	LayoutMode       string `json:"layoutMode"`
	PrimaryAxisAlign string `json:"primaryAxisAlignItems"`
	CounterAxisAlign string `json:"counterAxisAlignItems"`
}

// UnmarshalJSON decodes a node, applying the visible/opacity defaults.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Node{
		Kind:             raw.Type,
		Name:             raw.Name,
		Visible:          raw.Visible == nil || *raw.Visible,
		X:                raw.X,
		Y:                raw.Y,
		Width:            raw.Width,
		Height:           raw.Height,
		Opacity:          1,
		Children:         raw.Children,
		Fills:            raw.Fills,
		Strokes:          raw.Strokes,
		StrokeWeight:     raw.StrokeWeight,
		CornerRadius:     raw.CornerRadius,
		Padding:          raw.Padding,
		Effects:          raw.Effects,
		Characters:       raw.Characters,
		Font:             raw.FontName,
		FontSize:         raw.FontSize,
		LineHeight:       raw.LineHeight,
		LetterSpacing:    raw.LetterSpacing,
		TextAlign:        raw.TextAlign,
		LayoutMode:       raw.LayoutMode,
		PrimaryAxisAlign: raw.PrimaryAxisAlign,
		CounterAxisAlign: raw.CounterAxisAlign,
	}
	if raw.Opacity != nil {
		n.Opacity = *raw.Opacity
	}
	return nil
}
