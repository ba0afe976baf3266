package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/viz"
)

// visualizeCommand creates the visualize command for rendering the hierarchy.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [selection.json]",
		Short: "Render the node hierarchy as a diagram",
		Long: `Render the node hierarchy as a diagram.

The visualize command reads a selection export and renders the node tree as
a Graphviz diagram: one box per node, parent→child edges, invisible layers
dashed. Useful for checking what the generate command will describe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include geometry in node labels")

	return cmd
}

// runVisualize loads the selection and renders the hierarchy diagram.
func (c *CLI) runVisualize(ctx context.Context, input, format, output string, detailed bool) error {
	data, err := readInput(input)
	if err != nil {
		return fmt.Errorf("read selection %s: %w", input, err)
	}
	nodes, err := figma.DecodeSelection(data)
	if err != nil {
		return fmt.Errorf("decode selection: %w", err)
	}

	dot := viz.ToDOT(nodes, viz.Options{Detailed: detailed})

	var out []byte
	switch format {
	case "dot":
		out = []byte(dot)
	case "svg":
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		out, err = viz.RenderSVG(ctx, dot)
		spinner.Stop()
	case "png":
		spinner := newSpinnerWithContext(ctx, "Rendering PNG...")
		spinner.Start()
		out, err = viz.RenderPNG(ctx, dot)
		spinner.Stop()
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or png)", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if output == "" && format != "dot" {
		return fmt.Errorf("--output is required for %s format", format)
	}
	if err := writeOutput(output, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if output != "" {
		printSuccess("Diagram written")
		printFile(output)
	}
	return nil
}
