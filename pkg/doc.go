// Package pkg provides the libraries behind the releaseorder CLI.
//
// # Overview
//
// Releaseorder arranges release items so that every item comes after the
// items it requires, moving as few items as possible, and reports every
// reference cycle when no such order exists. The pkg directory is organized
// as follows:
//
//  1. [order] - The orderer: stable dependency ordering and cycle reports
//  2. [dag] - Reference graphs for drawing and reduction
//  3. [io] - Manifest and result documents (JSON, YAML, TOML)
//  4. [pipeline] - Orchestration (load → order → report)
//  5. [releasenotes] - Asciidoc release notes from resolved issues
//  6. [server] - The ordering API over HTTP
//
// # Architecture
//
// The typical data flow:
//
//	Manifest file / HTTP body
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [order] package (order or cycles)
//	         ↓
//	    [pipeline] Result → CLI output, JSON document or HTTP response
//
// # Quick Start
//
// Order arbitrary values by projecting names and references:
//
//	import "github.com/matzehuels/releaseorder/pkg/order"
//
//	sorted, err := order.Sort(items, func(i Item) string { return i.Key },
//	    func(i Item) []string { return i.Requires })
//	var cycles *order.CycleError
//	if errors.As(err, &cycles) {
//	    for _, c := range cycles.Cycles {
//	        fmt.Println(c)
//	    }
//	}
//
// Or run the full pipeline on a manifest file:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.OrderFile(ctx, "release.yaml", "")
//
// [order]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/order
// [dag]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/dag
// [io]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/pipeline
// [releasenotes]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/releasenotes
// [server]: https://pkg.go.dev/github.com/matzehuels/releaseorder/pkg/server
package pkg
