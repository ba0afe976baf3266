package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/describe"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output      string
		layoutOnly  bool
		noCache     bool
		interactive bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [selection.json]",
		Short: "Turn a selection export into a code-generation prompt",
		Long: `Turn a selection export into a code-generation prompt.

The generate command reads the JSON selection export produced by the
design-tool plugin, renders the node hierarchy as structured layout text,
and wraps it in a complete code-generation prompt for the chosen framework.

Use "-" as the input path to read from stdin. Results are cached locally
for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts, generateParams{
				output:      output,
				layoutOnly:  layoutOnly,
				noCache:     noCache,
				interactive: interactive,
			})
		},
	}

	cmd.Flags().StringVar(&opts.Framework, "framework", "", "target framework (default React)")
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "database technology for the schema request, or \"none\"")
	cmd.Flags().StringVar(&opts.Description, "description", "", "free-form description of what to build")
	cmd.Flags().BoolVar(&layoutOnly, "layout-only", false, "print only the rendered layout text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the prompt to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick which top-level layers to include")

	return cmd
}

type generateParams struct {
	output      string
	layoutOnly  bool
	noCache     bool
	interactive bool
}

// runGenerate executes the pipeline and writes the result.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options, params generateParams) error {
	data, err := readInput(input)
	if err != nil {
		return fmt.Errorf("read selection %s: %w", input, err)
	}

	nodes, err := figma.DecodeSelection(data)
	if err != nil {
		return fmt.Errorf("decode selection: %w", err)
	}

	if params.interactive {
		candidates := describe.FilterSelection(nodes)
		if len(candidates) > 0 {
			picked, err := pickNodes(candidates)
			if err != nil {
				return err
			}
			if picked == nil {
				printInfo("Aborted")
				return nil
			}
			nodes = picked
		}
	}

	runner, err := c.newRunner(params.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Generating prompt...")
	spinner.Start()

	result, err := runner.ExecuteNodes(ctx, nodes, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate: %w", err)
	}
	spinner.Stop()
	prog.done("Generated prompt")

	text := result.Prompt
	if params.layoutOnly {
		text = result.Layout
	}

	if params.output == "" {
		fmt.Println(text)
		return nil
	}

	if err := writeOutput(params.output, []byte(text+"\n")); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Prompt written")
	printStats(result.Stats.NodeCount, result.Stats.TreeSize, result.CacheInfo.PromptHit)
	printFile(params.output)
	if !params.layoutOnly && !result.Empty() {
		printNextStep("Visualize the hierarchy", fmt.Sprintf("%s visualize %s", appName, input))
	}
	return nil
}
