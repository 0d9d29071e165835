package pipeline

import (
	"fmt"
	"slices"

	"github.com/matzehuels/releaseorder/pkg/dag"
	"github.com/matzehuels/releaseorder/pkg/dag/transform"
	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/render/nodelink"
)

// Graph output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// GraphFormats lists the supported graph output formats.
var GraphFormats = []string{FormatDOT, FormatSVG}

// ValidateGraphFormat checks that format is a supported graph output format.
func ValidateGraphFormat(format string) error {
	if !slices.Contains(GraphFormats, format) {
		return fmt.Errorf("invalid graph format %q (want one of %v)", format, GraphFormats)
	}
	return nil
}

// GraphOptions configures [Runner.Graph].
type GraphOptions struct {
	Format string

	// Reduce drops references implied by longer paths. It has no effect on
	// cyclic manifests.
	Reduce bool

	nodelink.Options
}

// Graph renders the reference graph of m. Cycles found in result, if any,
// are highlighted.
func (r *Runner) Graph(m *pkgio.Manifest, result *Result, opts GraphOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatDOT
	}
	if err := ValidateGraphFormat(opts.Format); err != nil {
		return nil, err
	}

	g, err := m.Graph()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	if result != nil && result.HasCycles() {
		g.MarkCycles(result.CyclePaths())
	} else if opts.Reduce {
		r.reduce(g)
	}

	dot := nodelink.ToDOT(g, opts.Options)
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}
	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return svg, nil
}

func (r *Runner) reduce(g *dag.DAG) {
	removed := transform.TransitiveReduction(g)
	r.Logger.Debug("reduced graph", "removed_edges", removed, "edges", g.EdgeCount())
}
