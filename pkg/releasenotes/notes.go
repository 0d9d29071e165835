package releasenotes

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	errs "github.com/matzehuels/releaseorder/pkg/errors"
	"github.com/matzehuels/releaseorder/pkg/order"
)

// Section titles, in the order they appear in the notes. Issues of any
// other type are left out.
const (
	SectionUpgrade     = "Dependency upgrade"
	SectionFeature     = "New Feature"
	SectionBug         = "Bug"
	SectionImprovement = "Improvement"
	SectionTask        = "Task"
	SectionSubTask     = "Sub-task"

	cveTitle = "Fixed Common Vulnerabilities and Exposures (CVEs)"
)

// Sections lists the issue types that get a section, in display order.
var Sections = []string{
	SectionUpgrade,
	SectionFeature,
	SectionBug,
	SectionImprovement,
	SectionTask,
	SectionSubTask,
}

// Defaults used by [Build].
const (
	DefaultProduct   = "Apache TomEE"
	DefaultBrowseURL = "https://issues.apache.org/jira/browse/"
)

// Entry is one line of the notes.
type Entry struct {
	Key     string
	Summary string
}

// Section is a titled group of entries.
type Section struct {
	Title   string
	Entries []Entry
}

// Notes is a rendered-ready set of release notes.
type Notes struct {
	Product   string
	Version   string
	BrowseURL string
	Sections  []Section
	CVEs      []Entry
}

// Build groups issues into release notes for version.
//
// Issues are first ordered so that each issue follows the issues it
// requires; Build fails with the orderer's error if Requires names an issue
// that is not in the list, or if the requirements form a cycle.
func Build(version string, issues []Issue) (*Notes, error) {
	if strings.TrimSpace(version) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "release version cannot be empty")
	}
	for i, is := range issues {
		if err := errs.ValidateItemName(is.Key); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "issue %d", i+1)
		}
	}

	ordered, err := order.Sort(issues, issueKey, issueRequires)
	if err != nil {
		return nil, fmt.Errorf("order issues: %w", err)
	}

	notes := &Notes{
		Product:   DefaultProduct,
		Version:   version,
		BrowseURL: DefaultBrowseURL,
	}
	for _, title := range Sections {
		var plain, cves []Issue
		for _, is := range ordered {
			if is.Type != title {
				continue
			}
			if is.IsCVE() {
				cves = append(cves, is)
			} else {
				plain = append(plain, is)
			}
		}
		if len(plain)+len(cves) == 0 {
			continue
		}

		section := Section{Title: title}
		all := append(plain, cves...)
		if title == SectionUpgrade {
			section.Entries = upgradeEntries(all)
		} else {
			section.Entries = entries(all)
		}
		notes.Sections = append(notes.Sections, section)
		notes.CVEs = append(notes.CVEs, entries(cves)...)
	}
	return notes, nil
}

func entries(issues []Issue) []Entry {
	out := make([]Entry, len(issues))
	for i, is := range issues {
		out[i] = Entry{Key: is.Key, Summary: is.Summary}
	}
	return out
}

func upgradeEntries(issues []Issue) []Entry {
	out := make([]Entry, 0, len(issues))
	for _, is := range RemoveSuperseded(issues) {
		out = append(out, Entry{Key: is.Key, Summary: NormalizeUpgrade(is.Summary)})
	}
	slices.SortStableFunc(out, func(a, b Entry) int { return strings.Compare(a.Summary, b.Summary) })
	return out
}

// WriteAsciidoc writes the notes as an asciidoc page.
func (n *Notes) WriteAsciidoc(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "= %s %s Release Notes\n", n.Product, n.Version)
	bw.WriteString(":index-group: Release Notes\n")
	bw.WriteString(":jbake-type: page\n")
	bw.WriteString(":jbake-status: published\n")

	for _, s := range n.Sections {
		n.writeSection(bw, s.Title, s.Entries)
	}
	if len(n.CVEs) > 0 {
		n.writeSection(bw, cveTitle, n.CVEs)
	}
	return bw.Flush()
}

func (n *Notes) writeSection(w io.Writer, title string, list []Entry) {
	fmt.Fprintf(w, "\n== %s\n\n[.compact]\n", title)
	for _, e := range list {
		fmt.Fprintf(w, " - link:%s%s[%s] %s\n", n.BrowseURL, e.Key, e.Key, e.Summary)
	}
}
