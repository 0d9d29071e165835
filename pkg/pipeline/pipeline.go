// Package pipeline loads release manifests, orders them and reports the
// outcome.
//
// The same pipeline backs the CLI and the HTTP server so both entry points
// log, time and instrument runs identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.OrderFile(ctx, "release.yaml", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasCycles() {
//	    // report result.Cycles
//	}
//
// A manifest with reference cycles is not an error at this level: the
// result carries the cycles and the caller decides how to present them.
// Unknown references and duplicate names are returned as errors.
package pipeline

import (
	"time"

	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/order"
)

// Result is the outcome of one ordering run.
type Result struct {
	// RunID uniquely identifies the run in logs and API responses.
	RunID string

	// Items is the ordered manifest. Nil when Cycles is non-empty.
	Items []pkgio.Item

	// Order holds the names of Items.
	Order []string

	// Cycles lists every distinct reference cycle, shortest first.
	Cycles []order.Cycle

	Stats Stats
}

// Stats holds run statistics.
type Stats struct {
	ItemCount      int
	ReferenceCount int
	Duration       time.Duration
}

// HasCycles reports whether the run found reference cycles.
func (r *Result) HasCycles() bool { return len(r.Cycles) > 0 }

// CyclePaths returns each cycle's path as plain names.
func (r *Result) CyclePaths() [][]string {
	if len(r.Cycles) == 0 {
		return nil
	}
	paths := make([][]string, len(r.Cycles))
	for i, c := range r.Cycles {
		paths[i] = c.Path
	}
	return paths
}

// Document converts the result to its serialized form.
func (r *Result) Document() pkgio.Result {
	return pkgio.Result{RunID: r.RunID, Order: r.Order, Cycles: r.CyclePaths()}
}
