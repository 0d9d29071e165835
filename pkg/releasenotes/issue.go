package releasenotes

import (
	"io"
	"strings"

	pkgio "github.com/matzehuels/releaseorder/pkg/io"
)

// Link directions.
const (
	Outbound = "outbound"
	Inbound  = "inbound"
)

// Issue is a resolved issue to include in release notes.
type Issue struct {
	Key      string   `json:"key" yaml:"key" toml:"key"`
	Type     string   `json:"type" yaml:"type" toml:"type"`
	Summary  string   `json:"summary" yaml:"summary" toml:"summary"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
	Links    []Link   `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty" toml:"requires,omitempty"`
}

// Link is a typed link from an issue to another issue.
type Link struct {
	Type      string `json:"type" yaml:"type" toml:"type"`
	Direction string `json:"direction" yaml:"direction" toml:"direction"`
	Target    string `json:"target" yaml:"target" toml:"target"`
}

// IsCVE reports whether the issue carries a "cve" label, in any case.
func (i Issue) IsCVE() bool {
	for _, l := range i.Labels {
		if strings.EqualFold(l, "cve") {
			return true
		}
	}
	return false
}

func issueKey(i Issue) string        { return i.Key }
func issueRequires(i Issue) []string { return i.Requires }

// supersedes reports whether l marks its target as replaced by the issue
// holding the link. Both spellings occur in issue trackers.
func (l Link) supersedes() bool {
	if !strings.EqualFold(l.Direction, Outbound) {
		return false
	}
	return strings.EqualFold(l.Type, "Supercedes") || strings.EqualFold(l.Type, "Supersedes")
}

// Document is the on-disk form of an issue list.
type Document struct {
	Issues []Issue `json:"issues" yaml:"issues" toml:"issues"`
}

// ReadIssues decodes an issue list document.
func ReadIssues(r io.Reader, format pkgio.Format) ([]Issue, error) {
	var doc Document
	if err := pkgio.Decode(r, format, &doc); err != nil {
		return nil, err
	}
	return doc.Issues, nil
}
