package agents

import (
	"fmt"
	"regexp"
	"strings"

	"e2edev/pkg/schema"
)

// fencePattern matches a triple-backtick fenced region with an optional
// language tag on the opening fence.
var fencePattern = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")

// ExtractCodeBlocks parses fenced code blocks out of agent output, in order
// of appearance. Names are synthesized positionally (module_1, module_2, ...),
// untagged fences get language "text", and bodies are trimmed. Text with no
// fences yields an empty sequence; narrative-only developer output is an
// expected case, not an error.
func ExtractCodeBlocks(text string) []schema.CodeModule {
	matches := fencePattern.FindAllStringSubmatch(text, -1)

	modules := make([]schema.CodeModule, 0, len(matches))
	for i, match := range matches {
		language := strings.TrimSpace(match[1])
		if language == "" {
			language = "text"
		}

		modules = append(modules, schema.CodeModule{
			Name:     fmt.Sprintf("module_%d", i+1),
			Language: language,
			Source:   strings.TrimSpace(match[2]),
		})
	}

	return modules
}
