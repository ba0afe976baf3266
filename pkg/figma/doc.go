// Package figma models the node tree exported by the design-tool plugin.
//
// The plugin serializes the user's current selection as JSON; this package
// defines the corresponding Go types and the decoding rules. The tree arrives
// fully resolved (concrete positions, sizes, and style values) and is treated
// as read-only everywhere downstream.
//
// # Tri-state style attributes
//
// Style attributes on a node are each independently optional, and may also
// carry the design tool's "mixed" sentinel, meaning the value is not uniform
// across sub-elements. Both cases are modeled explicitly by [Value]:
//
//	w, ok := node.StrokeWeight.Get() // ok is false when mixed or absent
//
// Renderers treat mixed the same as absent and fall back to a fixed default,
// so no magic sentinel constants leak past the decode boundary.
//
// # Decoding
//
// [DecodeSelection] reads the plugin's selection export:
//
//	nodes, err := figma.DecodeSelection(data)
//
// Absent JSON fields decode to the absent state; the string "mixed" decodes
// to the mixed state; anything else decodes to a present value.
package figma
