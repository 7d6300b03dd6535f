package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"e2edev/pkg/schema"
)

// Section is one titled block of the final report.
type Section struct {
	Title string
	Body  string
}

// Sections flattens the populated artifacts into report sections, in stage
// order. Artifacts that were never produced are skipped.
func Sections(artifacts schema.Artifacts) []Section {
	sections := make([]Section, 0, len(schema.ArtifactKinds()))
	for _, kind := range schema.ArtifactKinds() {
		if !artifacts.Has(kind) {
			continue
		}
		sections = append(sections, Section{
			Title: kind.Title(),
			Body:  artifacts.Text(kind),
		})
	}
	return sections
}

// BuildMarkdown renders the full project report: a header with the original
// requirements, a table of contents, then one heading per section.
func BuildMarkdown(requirements string, sections []Section) string {
	var sb strings.Builder

	sb.WriteString("# Project Report\n\n")
	sb.WriteString("## Requirements\n\n")
	sb.WriteString(strings.TrimSpace(requirements))
	sb.WriteString("\n\n")

	if len(sections) > 0 {
		sb.WriteString("## Contents\n\n")
		for _, section := range sections {
			fmt.Fprintf(&sb, "- [%s](#%s)\n", section.Title, anchor(section.Title))
		}
		sb.WriteString("\n")
	}

	for _, section := range sections {
		fmt.Fprintf(&sb, "## %s\n\n", section.Title)
		sb.WriteString(strings.TrimSpace(section.Body))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// EncodeYAML marshals the sections as a YAML mapping of title to body,
// preserving stage order.
func EncodeYAML(sections []Section) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range sections {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: section.Title},
			&yaml.Node{Kind: yaml.ScalarNode, Value: section.Body},
		)
	}
	return yaml.Marshal(doc)
}

// anchor converts a section title to a GitHub-style heading anchor.
func anchor(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
