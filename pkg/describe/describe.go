package describe

import (
	"fmt"
	"strings"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

// kindTitles maps node kinds to the human-readable names used in output.
var kindTitles = map[figma.Kind]string{
	figma.KindRectangle:    "Rectangle",
	figma.KindEllipse:      "Ellipse",
	figma.KindLine:         "Line",
	figma.KindText:         "Text",
	figma.KindVector:       "Vector",
	figma.KindGroup:        "Group",
	figma.KindFrame:        "Frame",
	figma.KindComponent:    "Component",
	figma.KindComponentSet: "Component set",
	figma.KindInstance:     "Instance",
	figma.KindSection:      "Section",
}

// FilterSelection narrows a raw selection to the nodes that feed the
// renderer: recognized kinds first, then visible nodes. Unknown kinds only
// surface as explicit lines when they appear as children of a rendered
// container, never as top-level selection entries.
func FilterSelection(nodes []*figma.Node) []*figma.Node {
	var out []*figma.Node
	for _, n := range nodes {
		if n == nil || !n.Kind.Recognized() {
			continue
		}
		if !n.Visible {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Describe renders an ordered list of nodes: visible nodes render one bullet
// each (plus indented child blocks for containers), joined with newlines.
// Sibling order in the output matches input order. The input tree is never
// mutated; each call allocates a fresh string.
func Describe(nodes []*figma.Node) string {
	var parts []string
	for _, n := range nodes {
		if n == nil || !n.Visible {
			continue
		}
		parts = append(parts, describeNode(n))
	}
	return strings.Join(parts, "\n")
}

// describeNode dispatches on the node kind. Unrecognized kinds degrade to an
// explicit placeholder line so they never vanish from visible siblings.
func describeNode(n *figma.Node) string {
	switch n.Kind {
	case figma.KindRectangle, figma.KindEllipse:
		return describeShape(n)
	case figma.KindLine:
		return describeLine(n)
	case figma.KindText:
		return describeText(n)
	case figma.KindVector:
		return describeVector(n)
	case figma.KindGroup, figma.KindSection:
		return describeContainer(n, "")
	case figma.KindFrame, figma.KindComponent, figma.KindComponentSet, figma.KindInstance:
		return describeContainer(n, layoutInfo(n))
	default:
		return fmt.Sprintf("- Unknown node type: %s", n.Kind)
	}
}

// annotation returns the optional component-name suffix for the bullet line.
func annotation(n *figma.Node) string {
	if n.Name == "" {
		return ""
	}
	return fmt.Sprintf(" (Component Name: %s)", n.Name)
}

// sizePosition formats the shared geometry fragment of most variants.
func sizePosition(n *figma.Node) string {
	return fmt.Sprintf("Size: %sx%s, Position: (%s, %s)",
		FormatNumber(n.Width), FormatNumber(n.Height),
		FormatNumber(n.X), FormatNumber(n.Y))
}

// shadowList comma-joins the node's visible drop shadows, or "none".
func shadowList(n *figma.Node) string {
	shadows := Shadows(n)
	if len(shadows) == 0 {
		return "none"
	}
	return strings.Join(shadows, ", ")
}

// describeShape renders rectangles and ellipses.
func describeShape(n *figma.Node) string {
	return fmt.Sprintf("- %s%s: %s, Background: %s, Border: %s %s, Opacity: %s, Border radius: %s, Shadows: %s",
		kindTitles[n.Kind], annotation(n), sizePosition(n),
		BackgroundColor(n), BorderWidth(n), BorderColor(n),
		FormatPercent(n.Opacity), BorderRadius(n), shadowList(n))
}

// describeLine renders a line from its start point to the end point implied
// by its width and height.
func describeLine(n *figma.Node) string {
	return fmt.Sprintf("- Line%s: From: (%s, %s), To: (%s, %s), Stroke width: %s, Color: %s, Opacity: %s",
		annotation(n),
		FormatNumber(n.X), FormatNumber(n.Y),
		FormatNumber(n.X+n.Width), FormatNumber(n.Y+n.Height),
		BorderWidth(n), BorderColor(n), FormatPercent(n.Opacity))
}

// describeText renders a text node. Newlines inside the content are escaped
// so the node stays on a single line; text color reuses the fill-list
// extractor since text fills follow the same convention as backgrounds.
func describeText(n *figma.Node) string {
	return fmt.Sprintf(`- Text%s: "%s", Font size: %s, Font family: %s, Font style: %s, Alignment: %s, Color: %s, Opacity: %s, Line height: %s, Letter spacing: %s`,
		annotation(n), escapeText(n.Characters),
		fontSize(n), fontFamily(n), fontStyle(n), textAlignment(n),
		BackgroundColor(n), FormatPercent(n.Opacity),
		lineHeight(n), letterSpacing(n))
}

// describeVector renders a vector node: geometry only.
func describeVector(n *figma.Node) string {
	return fmt.Sprintf("- Vector%s: %s", annotation(n), sizePosition(n))
}

// layoutInfo formats the auto-layout fragment of frame-like containers.
// A container without auto-layout reports exactly "Layout mode: NONE".
func layoutInfo(n *figma.Node) string {
	mode := n.LayoutMode
	if mode == "" || mode == figma.LayoutNone {
		return "Layout mode: NONE"
	}
	return fmt.Sprintf("Layout mode: %s, Primary axis: %s, Counter axis: %s, Padding: %s",
		mode, n.PrimaryAxisAlign, n.CounterAxisAlign, PaddingOf(n))
}

// describeContainer renders groups, sections, and frame-like nodes: a bullet
// line with the total child count (invisible children included), followed by
// an indented block of the visible children.
func describeContainer(n *figma.Node, layout string) string {
	line := fmt.Sprintf("- %s%s: %d children, %s",
		kindTitles[n.Kind], annotation(n), len(n.Children), sizePosition(n))
	if layout != "" {
		line += ", " + layout
	}

	block := describeChildren(n.Children)
	if block == "" {
		return line
	}
	return line + "\n" + Indent(block, indentWidth)
}

// describeChildren renders each child through its own singleton Describe
// call, so every child's indentation is computed independently and sibling
// order is preserved. Invisible children contribute nothing.
func describeChildren(children []*figma.Node) string {
	var parts []string
	for _, c := range children {
		if s := Describe([]*figma.Node{c}); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
