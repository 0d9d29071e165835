package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/releaseorder/pkg/buildinfo"
	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/observability"
	"github.com/matzehuels/releaseorder/pkg/pipeline"
	"github.com/matzehuels/releaseorder/pkg/server"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "releaseorder"

	// envAddr overrides the default listen address of the serve command.
	envAddr = "RELEASEORDER_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level every load, order
// and HTTP event is logged through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Releaseorder orders release items so dependencies come first",
		Long: `Releaseorder reads a manifest of release items, each naming the items it
requires, and prints an order in which every item follows its requirements.
Items keep their manifest position where they can. Reference cycles are
reported in full.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.orderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.notesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// formatFlag parses the --format value for manifest inputs. Empty means
// infer from the file extension.
func formatFlag(s string) (pkgio.Format, error) {
	if s == "" {
		return "", nil
	}
	return pkgio.ParseFormat(s)
}

// defaultAddr returns the serve address from the environment, falling back
// to the server default.
func defaultAddr() string {
	if addr := os.Getenv(envAddr); addr != "" {
		return addr
	}
	return server.DefaultAddr
}
