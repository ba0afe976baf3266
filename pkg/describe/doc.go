// Package describe renders a design node tree as structured natural-language
// text, one bullet line per node with indented child blocks.
//
// The renderer is a recursive descent over the node union defined in
// [pkg/figma]: each kind has its own line format, container kinds recurse
// into their children, and indentation deepens with nesting. The output is
// the "Layout" section consumed by prompt assembly.
//
// # Totality
//
// Every style extractor and every kind branch has a fixed fallback, so the
// renderer never fails on a well-formed tree. Invisible nodes are pruned at
// every depth; nodes of an unrecognized kind render as an explicit
// "Unknown node type" line instead of silently disappearing.
//
// # Usage
//
//	text := describe.Describe(nodes)
//
// The input tree is never mutated and no state survives a call, so Describe
// is safe to invoke concurrently on shared trees.
package describe
