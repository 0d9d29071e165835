package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/releaseorder/pkg/io"
	"github.com/matzehuels/releaseorder/pkg/releasenotes"
)

// notesCommand creates the notes command.
func (c *CLI) notesCommand() *cobra.Command {
	var (
		version string
		product string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "notes <issues>",
		Short: "Generate asciidoc release notes from an issue list",
		Long: `Generate asciidoc release notes from a list of resolved issues.

Issues are grouped by type. Within a group, an issue that requires another is
listed after it. Dependency upgrades are listed by library name, and issues
labelled "cve" are repeated in a vulnerabilities section.`,
		Example: `  releaseorder notes issues.yaml --release 8.0.7 > tomee-8.0.7-release-notes.adoc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatFlag(format)
			if err != nil {
				return err
			}
			file, err := pkgio.Open(args[0], &f)
			if err != nil {
				return err
			}
			defer file.Close()

			issues, err := releasenotes.ReadIssues(file, f)
			if err != nil {
				return err
			}
			notes, err := releasenotes.Build(version, issues)
			if err != nil {
				return err
			}
			if product != "" {
				notes.Product = product
			}
			loggerFromContext(cmd.Context()).Debug("built release notes", "issues", len(issues), "sections", len(notes.Sections))
			return notes.WriteAsciidoc(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&version, "release", "r", "", "release version, e.g. 8.0.7 (required)")
	cmd.Flags().StringVar(&product, "product", releasenotes.DefaultProduct, "product name in the title")
	cmd.Flags().StringVarP(&format, "format", "f", "", "issue list format: json, yaml or toml (default: from extension)")
	_ = cmd.MarkFlagRequired("release")

	return cmd
}
