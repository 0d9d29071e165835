// Package server exposes the ordering pipeline over HTTP.
//
// # Endpoints
//
//   - POST /v1/order orders a manifest sent as the request body. JSON is
//     expected unless Content-Type names YAML or TOML. Responds 200 with the
//     order, 409 with every reference cycle, 422 when an item references an
//     unknown item or names are invalid or duplicated, and 400 when the body
//     cannot be decoded.
//   - GET /healthz reports liveness.
//   - GET /version reports build information.
//
// The server holds no state beyond its [pipeline.Runner]; every request is
// an independent run.
package server
