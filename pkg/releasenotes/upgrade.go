package releasenotes

import "regexp"

var (
	upgradePrefixRe = regexp.MustCompile(`(?i)^(upgrade to|upgrade|update to|update) (.*)`)
	upgradeToRe     = regexp.MustCompile(`(?i) to `)
	upgradeInRe     = regexp.MustCompile(`(?i) in tomee.*`)
	upgradeApacheRe = regexp.MustCompile(`(?i)apache `)
)

// NormalizeUpgrade reduces a dependency upgrade summary to "<library>
// <version>" so upgrades sort by library name:
//
//	"Upgrade CXF to 3.3.10 / 3.4.3 in TomEE" -> "CXF 3.3.10 / 3.4.3"
//	"Apache Johnzon 1.2.9"                   -> "Johnzon 1.2.9"
//
// Summaries that do not look like upgrades are returned unchanged.
func NormalizeUpgrade(summary string) string {
	s := upgradePrefixRe.ReplaceAllString(summary, "$2")
	s = upgradeToRe.ReplaceAllString(s, " ")
	s = upgradeInRe.ReplaceAllString(s, "")
	if loc := upgradeApacheRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}
	return s
}

// RemoveSuperseded drops every issue that another issue in the list
// supersedes through an outbound link. The remaining issues keep their order.
func RemoveSuperseded(issues []Issue) []Issue {
	superseded := make(map[string]bool)
	for _, is := range issues {
		for _, l := range is.Links {
			if l.supersedes() {
				superseded[l.Target] = true
			}
		}
	}

	kept := make([]Issue, 0, len(issues))
	for _, is := range issues {
		if !superseded[is.Key] {
			kept = append(kept, is)
		}
	}
	return kept
}
