// Package releasenotes builds asciidoc release notes from resolved issues.
//
// Issues are listed in dependency order: an issue that requires another is
// listed after it, using the same ordering as [order.Sort]. Issues are then
// grouped into a fixed list of sections by type. Dependency upgrades are
// listed alphabetically by their normalized summary (see [NormalizeUpgrade])
// after dropping upgrades superseded by another issue in the set. Issues
// labelled "cve" are repeated in a trailing vulnerabilities section.
//
//	notes, err := releasenotes.Build("8.0.7", issues)
//	if err != nil {
//	    return err
//	}
//	return notes.WriteAsciidoc(os.Stdout)
package releasenotes
