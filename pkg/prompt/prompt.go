// Package prompt assembles the final code-generation prompt around a
// rendered layout description.
//
// The output contract is a fixed section order: title, Overview (description,
// framework, requirement checklist), an optional database-schema request,
// Layout (the rendered node tree from [pkg/describe]), Implementation, and
// Usage. When nothing is selected, the fixed [NoSelectionNotice] replaces the
// whole prompt and no Layout section is produced.
package prompt

import (
	"fmt"
	"strings"
)

// Defaults applied by [Params.SetDefaults].
const (
	DefaultFramework = "React"

	// SchemaNone is the explicit "no schema requested" sentinel accepted in
	// requests alongside an empty value.
	SchemaNone = "none"
)

// NoSelectionNotice is returned in place of a prompt when the selection is
// empty or absent.
const NoSelectionNotice = "Please select at least one layer or frame to generate a prompt."

// Params carries the free-form request parameters supplied by the plugin
// host alongside the selection.
type Params struct {
	// Framework is the requested output framework name (free-form).
	Framework string `json:"framework"`

	// Schema is an optional database technology keyword, or "none".
	Schema string `json:"schema,omitempty"`

	// Description is a free-form description of what should be built.
	Description string `json:"description,omitempty"`
}

// SetDefaults fills empty parameters. Idempotent.
func (p *Params) SetDefaults() {
	if p.Framework == "" {
		p.Framework = DefaultFramework
	}
	if p.Schema == "" {
		p.Schema = SchemaNone
	}
}

// WantsSchema reports whether a database schema request line should be
// emitted.
func (p *Params) WantsSchema() bool {
	return p.Schema != "" && !strings.EqualFold(p.Schema, SchemaNone)
}

// requirements is the fixed checklist echoed in every Overview section.
var requirements = []string{
	"Ensure the implementation is accessible: semantic elements, ARIA attributes where needed, full keyboard navigation.",
	"Keep rendering performant: avoid unnecessary re-renders and deeply nested markup.",
	"Structure the code into small, reusable components with clearly typed inputs.",
}

// implementationNotes is the fixed Implementation section body.
var implementationNotes = []string{
	"Match sizes, positions, colors, and typography from the layout description exactly.",
	"Use the layout hierarchy to drive component composition: nested blocks become child components.",
	"Use the framework's idiomatic styling approach for the listed style values.",
	"Treat \"transparent\" and zero values as intentional defaults, not omissions.",
}

// usageNotes is the fixed Usage section body.
var usageNotes = []string{
	"Review the generated code against project conventions before committing.",
	"Replace placeholder content with real data sources.",
	"Adjust breakpoints if the target viewport differs from the design frame.",
}

// Build assembles the complete prompt around an already-rendered layout
// description. The caller is responsible for handling the empty-selection
// case with [NoSelectionNotice]; Build assumes layout describes at least one
// node.
func Build(layout string, p Params) string {
	p.SetDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Component Generation Prompt\n\n", p.Framework)

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "Generate a %s implementation of the design described below.\n", p.Framework)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	fmt.Fprintf(&b, "Target framework: %s\n\n", p.Framework)

	b.WriteString("Requirements:\n")
	writeList(&b, requirements)

	if p.WantsSchema() {
		fmt.Fprintf(&b, "\nPlease also provide a %s database schema for the data model implied by the design.\n", p.Schema)
	}

	b.WriteString("\n## Layout\n")
	b.WriteString("The following is a structured description of the selected layers, their geometry, styles, and hierarchy:\n\n")
	b.WriteString(layout)
	b.WriteString("\n")

	b.WriteString("\n## Implementation\n")
	writeList(&b, implementationNotes)

	b.WriteString("\n## Usage\n")
	writeList(&b, usageNotes)

	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
