package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/releaseorder/pkg/dag"
	errs "github.com/matzehuels/releaseorder/pkg/errors"
)

// MetaSummary is the node metadata key holding an item's summary.
const MetaSummary = "summary"

// Item is one entry of a manifest.
type Item struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Requires []string       `json:"requires,omitempty" yaml:"requires,omitempty" toml:"requires,omitempty"`
	Summary  string         `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty"`
	Meta     map[string]any `json:"meta,omitempty" yaml:"meta,omitempty" toml:"meta,omitempty"`
}

// ItemName returns the item's name. It is the name projection for order.Sort.
func ItemName(i Item) string { return i.Name }

// ItemRefs returns the names the item requires. It is the reference
// projection for order.Sort.
func ItemRefs(i Item) []string { return i.Requires }

// Manifest is an ordered list of release items.
type Manifest struct {
	Items []Item `json:"items" yaml:"items" toml:"items"`
}

// Names returns the item names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Items))
	for i, it := range m.Items {
		names[i] = it.Name
	}
	return names
}

// ReferenceCount returns the total number of declared references.
func (m *Manifest) ReferenceCount() int {
	n := 0
	for _, it := range m.Items {
		n += len(it.Requires)
	}
	return n
}

// Validate checks that every item name and every reference is a usable
// identifier. Whether references resolve is left to the orderer, which
// reports the offending item.
func (m *Manifest) Validate() error {
	for i, it := range m.Items {
		if err := errs.ValidateItemName(it.Name); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidManifest, err, "item %d", i+1)
		}
		for _, ref := range it.Requires {
			if err := errs.ValidateItemName(ref); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidManifest, err, "item %s: requires entry", it.Name)
			}
		}
	}
	return nil
}

// Graph builds the reference graph of the manifest. Summaries are copied to
// node metadata under [MetaSummary].
func (m *Manifest) Graph() (*dag.DAG, error) {
	g, err := dag.FromItems(m.Items, ItemName, ItemRefs)
	if err != nil {
		return nil, err
	}
	for _, it := range m.Items {
		if it.Summary == "" {
			continue
		}
		if n, ok := g.Node(it.Name); ok {
			n.Meta[MetaSummary] = it.Summary
		}
	}
	return g, nil
}

// ReadManifest decodes and validates a manifest from r.
// ReadManifest does not close r.
func ReadManifest(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	if err := Decode(r, format, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ImportManifest reads the manifest at path. An empty format is inferred
// from the file extension.
func ImportManifest(path string, format Format) (*Manifest, error) {
	f, err := Open(path, &format)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadManifest(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Open validates path, resolves an empty *format from its extension and
// opens the file for reading.
func Open(path string, format *Format) (*os.File, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	if *format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		*format = f
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// WriteManifest encodes m to w in the given format.
func WriteManifest(w io.Writer, m *Manifest, format Format) error {
	return Encode(w, format, m)
}

// ExportManifest writes m to a file at path, creating or truncating it.
// An empty format is inferred from the file extension.
func ExportManifest(m *Manifest, path string, format Format) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteManifest(f, m, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
