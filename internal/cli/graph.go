package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/releaseorder/pkg/pipeline"
	"github.com/matzehuels/releaseorder/pkg/render/nodelink"
)

type graphOpts struct {
	format   string
	output   string
	input    string
	reduce   bool
	detailed bool
	rankdir  string
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <manifest>",
		Short: "Write the reference graph of a manifest",
		Long: `Write the reference graph of a manifest as Graphviz DOT or SVG.

Items in a reference cycle and the references that close it are drawn in red.`,
		Example: `  releaseorder graph release.yaml > release.dot
  releaseorder graph release.yaml --format svg -o release.svg --reduce`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", pipeline.FormatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.input, "input-format", "f", "", "manifest format: json, yaml or toml (default: from extension)")
	cmd.Flags().BoolVar(&opts.reduce, "reduce", false, "drop references implied by longer paths")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include item metadata in labels")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "TB", "graph direction: TB, BT, LR or RL")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path string, opts graphOpts) error {
	ctx := cmd.Context()
	if err := pipeline.ValidateGraphFormat(opts.format); err != nil {
		return err
	}
	format, err := formatFlag(opts.input)
	if err != nil {
		return err
	}

	runner := c.newRunner()
	m, err := runner.Load(ctx, path, format)
	if err != nil {
		return err
	}
	result, err := runner.Order(ctx, m)
	if err != nil {
		return err
	}

	gopts := pipeline.GraphOptions{
		Format:  opts.format,
		Reduce:  opts.reduce,
		Options: nodelink.Options{Detailed: opts.detailed, RankDir: opts.rankdir},
	}

	var spin *Spinner
	if opts.format == pipeline.FormatSVG {
		spin = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering SVG...")
		spin.Start()
	}
	data, err := runner.Graph(m, result, gopts)
	if spin != nil {
		switch {
		case spin.Cancelled():
			spin.Stop()
			return ctx.Err()
		case err != nil:
			spin.StopWithError("SVG rendering failed")
		default:
			spin.StopWithSuccess(fmt.Sprintf("Rendered %d items", len(m.Items)))
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote %s graph", opts.format)
	printFile(cmd.ErrOrStderr(), opts.output)
	if result.HasCycles() {
		printWarning(cmd.ErrOrStderr(), "%d reference cycle(s) highlighted", len(result.Cycles))
	}
	return nil
}
