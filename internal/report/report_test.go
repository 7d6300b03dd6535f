package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"e2edev/pkg/schema"
)

func fullArtifacts() schema.Artifacts {
	return schema.Artifacts{
		DesignSpec: "Wireframes: login screen, task list.",
		CodeModules: []schema.CodeModule{
			{Name: "module_1", Language: "python", Source: "def add_task(tasks, title):\n    tasks.append(title)"},
			{Name: "module_2", Language: "sparkle", Source: "glitter"},
		},
		TestResults:  "All scenarios pass.",
		Presentation: "Introducing the to-do app.",
	}
}

func TestSections_StageOrderAndSkips(t *testing.T) {
	sections := Sections(schema.Artifacts{
		DesignSpec:   "spec",
		Presentation: "pitch",
	})

	require.Len(t, sections, 2, "unproduced artifacts are skipped")
	assert.Equal(t, "Design Specifications", sections[0].Title)
	assert.Equal(t, "Presentation", sections[1].Title)
}

func TestSections_RendersCodeModulesAsFences(t *testing.T) {
	sections := Sections(fullArtifacts())

	require.Len(t, sections, 4)
	assert.Equal(t, "Code Modules", sections[1].Title)
	assert.Contains(t, sections[1].Body, "```python\ndef add_task")
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown("Build a to-do list app.\n", Sections(fullArtifacts()))

	assert.Contains(t, md, "# Project Report")
	assert.Contains(t, md, "## Requirements\n\nBuild a to-do list app.")
	assert.Contains(t, md, "- [Design Specifications](#design-specifications)")
	assert.Contains(t, md, "- [Test Results](#test-results)")
	assert.Contains(t, md, "## Presentation\n\nIntroducing the to-do app.")
}

func TestBuildMarkdown_NoSections(t *testing.T) {
	md := BuildMarkdown("Just started.", nil)

	assert.Contains(t, md, "## Requirements")
	assert.NotContains(t, md, "## Contents", "no TOC for an empty report")
}

func TestEncodeYAML_PreservesOrder(t *testing.T) {
	encoded, err := EncodeYAML(Sections(fullArtifacts()))
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(encoded, &doc))
	require.Len(t, doc.Content, 1)
	mapping := doc.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)

	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	assert.Equal(t, []string{"Design Specifications", "Code Modules", "Test Results", "Presentation"}, keys)
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	err := WriteReport(dir, "Build a to-do list app.", fullArtifacts())
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Project Report")

	raw, err := os.ReadFile(filepath.Join(dir, "report.yaml"))
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, "All scenarios pass.", decoded["Test Results"])

	source, err := os.ReadFile(filepath.Join(dir, "code", "module_1.py"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "def add_task")

	// Unknown language tags fall back to .txt.
	_, err = os.Stat(filepath.Join(dir, "code", "module_2.txt"))
	assert.NoError(t, err)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-")
	}
}

func TestWriteCodeModules_Empty(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteCodeModules(filepath.Join(dir, "code"), nil))

	_, err := os.Stat(filepath.Join(dir, "code"))
	assert.True(t, os.IsNotExist(err), "no directory for an empty module list")
}
