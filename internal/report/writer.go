package report

import (
	"fmt"
	"os"
	"path/filepath"

	"e2edev/pkg/schema"
)

// languageExtensions maps fence language tags to file extensions. Unknown
// tags fall through to .txt.
var languageExtensions = map[string]string{
	"python":     ".py",
	"py":         ".py",
	"go":         ".go",
	"golang":     ".go",
	"javascript": ".js",
	"js":         ".js",
	"typescript": ".ts",
	"ts":         ".ts",
	"html":       ".html",
	"css":        ".css",
	"sql":        ".sql",
	"bash":       ".sh",
	"sh":         ".sh",
	"json":       ".json",
	"yaml":       ".yaml",
	"yml":        ".yaml",
}

// WriteReport writes the markdown and YAML renderings of the report under
// dir, creating it if needed.
func WriteReport(dir, requirements string, artifacts schema.Artifacts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	sections := Sections(artifacts)

	markdown := BuildMarkdown(requirements, sections)
	if err := writeFileAtomic(filepath.Join(dir, "report.md"), []byte(markdown)); err != nil {
		return fmt.Errorf("write report.md: %w", err)
	}

	encoded, err := EncodeYAML(sections)
	if err != nil {
		return fmt.Errorf("encode report.yaml: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, "report.yaml"), encoded); err != nil {
		return fmt.Errorf("write report.yaml: %w", err)
	}

	return WriteCodeModules(filepath.Join(dir, "code"), artifacts.CodeModules)
}

// WriteCodeModules writes each code module to its own file under dir, named
// by module name with a language-derived extension.
func WriteCodeModules(dir string, modules []schema.CodeModule) error {
	if len(modules) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create code dir: %w", err)
	}

	for _, module := range modules {
		name := module.Name + extensionFor(module.Language)
		if err := writeFileAtomic(filepath.Join(dir, name), []byte(module.Source+"\n")); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// writeFileAtomic writes data to a sibling temp file and renames it over the
// target, so a crash never leaves a half-written report.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// extensionFor returns the file extension for a fence language tag.
func extensionFor(language string) string {
	if ext, ok := languageExtensions[language]; ok {
		return ext
	}
	return ".txt"
}
