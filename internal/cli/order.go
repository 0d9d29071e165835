package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/order"
	"github.com/matzehuels/releaseorder/pkg/pipeline"
)

type orderOpts struct {
	format      string
	json        bool
	interactive bool
}

// orderCommand creates the order command.
func (c *CLI) orderCommand() *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order <manifest>",
		Short: "Print manifest items in dependency order",
		Long: `Print manifest items so that every item follows the items it requires.

Items that are already after their requirements keep their position. If the
references form cycles, every distinct cycle is printed and the command fails.`,
		Example: `  releaseorder order release.yaml
  releaseorder order release.json --json
  releaseorder order release.toml --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "manifest format: json, yaml or toml (default: from extension)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the result document as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse cycles interactively")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	return cmd
}

func (c *CLI) runOrder(cmd *cobra.Command, path string, opts orderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	format, err := formatFlag(opts.format)
	if err != nil {
		return err
	}

	prog := newProgress(logger, "manifest", path)
	result, err := c.newRunner().OrderFile(ctx, path, format)
	if err != nil {
		return err
	}

	if opts.json {
		if err := pkgio.WriteResult(out, result.Document()); err != nil {
			return err
		}
		return cycleError(result)
	}

	if result.HasCycles() {
		prog.done("found reference cycles", "cycles", len(result.Cycles), "run", result.RunID)
		if opts.interactive {
			if err := browseCycles(cmd, result.Cycles); err != nil {
				return err
			}
		} else {
			printError(out, "%d reference cycle(s) in %s", len(result.Cycles), path)
			printCycles(out, result.Cycles)
			printDetail(out, "break each cycle by removing one of its references")
		}
		return cycleError(result)
	}

	prog.done("ordered manifest", "items", result.Stats.ItemCount, "run", result.RunID)
	printOrder(out, result.Order)
	printStats(out,
		fmt.Sprintf("%d items", result.Stats.ItemCount),
		fmt.Sprintf("%d references", result.Stats.ReferenceCount),
		"run "+result.RunID)
	return nil
}

// cycleError turns a cyclic result into the command's failure.
func cycleError(result *pipeline.Result) error {
	if !result.HasCycles() {
		return nil
	}
	return &order.CycleError{Cycles: result.Cycles}
}

func browseCycles(cmd *cobra.Command, cycles []order.Cycle) error {
	p := tea.NewProgram(NewCycleBrowserModel(cycles),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()))
	_, err := p.Run()
	return err
}
