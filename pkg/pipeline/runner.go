package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/observability"
	"github.com/matzehuels/releaseorder/pkg/order"
)

// Runner executes ordering runs.
//
// The Runner is stateless except for its logger, so multiple goroutines can
// safely share one.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// OrderFile loads the manifest at path and orders it. An empty format is
// inferred from the file extension.
func (r *Runner) OrderFile(ctx context.Context, path string, format pkgio.Format) (*Result, error) {
	m, err := r.Load(ctx, path, format)
	if err != nil {
		return nil, err
	}
	return r.Order(ctx, m)
}

// Load reads and validates the manifest at path.
func (r *Runner) Load(ctx context.Context, path string, format pkgio.Format) (*pkgio.Manifest, error) {
	hooks := observability.Load()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	m, err := pkgio.ImportManifest(path, format)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	hooks.OnLoadComplete(ctx, path, len(m.Items), time.Since(start), nil)

	r.Logger.Debug("loaded manifest", "path", path, "items", len(m.Items))
	return m, nil
}

// Order sorts the manifest items so every item follows the items it
// requires. Cycles are reported in the result, not as an error. The cycle
// search stops with ctx's error once ctx is done.
func (r *Runner) Order(ctx context.Context, m *pkgio.Manifest) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Stats: Stats{
			ItemCount:      len(m.Items),
			ReferenceCount: m.ReferenceCount(),
		},
	}
	logger := r.Logger.With("run", result.RunID)

	hooks := observability.Order()
	hooks.OnOrderStart(ctx, len(m.Items))
	start := time.Now()

	items, err := order.SortContext(ctx, m.Items, pkgio.ItemName, pkgio.ItemRefs)
	result.Stats.Duration = time.Since(start)

	var cycleErr *order.CycleError
	switch {
	case errors.As(err, &cycleErr):
		result.Cycles = cycleErr.Cycles
		hooks.OnOrderComplete(ctx, len(m.Items), len(result.Cycles), result.Stats.Duration, nil)
		logger.Warn("reference cycles", "cycles", len(result.Cycles), "duration", result.Stats.Duration)
		return result, nil
	case err != nil:
		hooks.OnOrderComplete(ctx, len(m.Items), 0, result.Stats.Duration, err)
		return nil, fmt.Errorf("order: %w", err)
	}

	result.Items = items
	result.Order = order.Names(items, pkgio.ItemName)
	hooks.OnOrderComplete(ctx, len(m.Items), 0, result.Stats.Duration, nil)

	logger.Info("ordered items",
		"items", result.Stats.ItemCount,
		"references", result.Stats.ReferenceCount,
		"duration", result.Stats.Duration)
	return result, nil
}
