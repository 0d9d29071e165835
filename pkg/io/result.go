package io

import (
	"encoding/json"
	"io"
)

// Result is the document written for an ordering run: either the ordered
// names or the cycles that prevent an order. A successful run always carries
// an "order" key, empty for an empty manifest; a cyclic run carries
// "cycles" and no order.
type Result struct {
	RunID  string     `json:"run_id,omitempty"`
	Order  []string   `json:"order"`
	Cycles [][]string `json:"cycles,omitempty"`
}

// MarshalJSON encodes the order on success and the cycles otherwise.
func (r Result) MarshalJSON() ([]byte, error) {
	if len(r.Cycles) > 0 {
		return json.Marshal(struct {
			RunID  string     `json:"run_id,omitempty"`
			Cycles [][]string `json:"cycles"`
		}{r.RunID, r.Cycles})
	}
	order := r.Order
	if order == nil {
		order = []string{}
	}
	return json.Marshal(struct {
		RunID string   `json:"run_id,omitempty"`
		Order []string `json:"order"`
	}{r.RunID, order})
}

// WriteResult encodes r as indented JSON.
func WriteResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
