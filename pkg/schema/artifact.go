package schema

import (
	"fmt"
	"strings"
)

// ArtifactKind names a stage-owned output stored in the pipeline state.
type ArtifactKind string

const (
	ArtifactDesignSpec   ArtifactKind = "design_spec"
	ArtifactCodeModules  ArtifactKind = "code_modules"
	ArtifactTestResults  ArtifactKind = "test_results"
	ArtifactPresentation ArtifactKind = "presentation"
)

// ArtifactKinds returns all artifact kinds in stage order.
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{
		ArtifactDesignSpec,
		ArtifactCodeModules,
		ArtifactTestResults,
		ArtifactPresentation,
	}
}

// ParseArtifactKind parses a user-supplied artifact kind string.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	kind := ArtifactKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case ArtifactDesignSpec, ArtifactCodeModules, ArtifactTestResults, ArtifactPresentation:
		return kind, nil
	}
	return "", fmt.Errorf("unknown artifact kind: %q", s)
}

// Title returns the section title used when artifacts are handed to the
// report renderer.
func (k ArtifactKind) Title() string {
	switch k {
	case ArtifactDesignSpec:
		return "Design Specifications"
	case ArtifactCodeModules:
		return "Code Modules"
	case ArtifactTestResults:
		return "Test Results"
	case ArtifactPresentation:
		return "Presentation"
	}
	return string(k)
}

// CodeModule is one fenced code block extracted from the developer agent's
// output. Name is synthesized positionally (module_1, module_2, ...).
type CodeModule struct {
	Name     string
	Language string
	Source   string
}

// Artifacts holds the stage-owned outputs of a session. Each field is
// written once by the stage that owns it; only feedback revisions rewrite.
type Artifacts struct {
	DesignSpec   string
	CodeModules  []CodeModule
	TestResults  string
	Presentation string
}

// Clone returns a deep copy of the artifacts.
func (a Artifacts) Clone() Artifacts {
	clone := a
	clone.CodeModules = make([]CodeModule, len(a.CodeModules))
	copy(clone.CodeModules, a.CodeModules)
	return clone
}

// Has reports whether the artifact of the given kind has been populated.
func (a Artifacts) Has(kind ArtifactKind) bool {
	switch kind {
	case ArtifactDesignSpec:
		return a.DesignSpec != ""
	case ArtifactCodeModules:
		return len(a.CodeModules) > 0
	case ArtifactTestResults:
		return a.TestResults != ""
	case ArtifactPresentation:
		return a.Presentation != ""
	}
	return false
}

// Text renders the artifact of the given kind as plain text. Code modules
// are rendered as fenced blocks so they round-trip through the extractor.
func (a Artifacts) Text(kind ArtifactKind) string {
	switch kind {
	case ArtifactDesignSpec:
		return a.DesignSpec
	case ArtifactCodeModules:
		return RenderCodeModules(a.CodeModules)
	case ArtifactTestResults:
		return a.TestResults
	case ArtifactPresentation:
		return a.Presentation
	}
	return ""
}

// RenderCodeModules renders code modules as fenced code blocks.
func RenderCodeModules(modules []CodeModule) string {
	var sb strings.Builder
	for i, mod := range modules {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("```")
		sb.WriteString(mod.Language)
		sb.WriteString("\n")
		sb.WriteString(mod.Source)
		sb.WriteString("\n```")
	}
	return sb.String()
}
