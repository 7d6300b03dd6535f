package agents

import (
	"strings"

	"e2edev/internal/llm"
	"e2edev/pkg/schema"
)

// placeholderValues selects the template values visible at the input's
// stage. A value is populated only when the current stage is strictly past
// the stage that produces it, so earlier-stage prompts never see artifacts
// that do not exist yet.
func placeholderValues(in *Input) map[string]string {
	values := map[string]string{
		llm.PlaceholderRequirements: in.Requirements,
		llm.PlaceholderConversation: renderConversation(in.Conversation),
	}

	if in.Stage.Past(schema.StageRequirements) {
		values[llm.PlaceholderProjectPlan] = projectPlan(in.Conversation)
	}

	if in.Stage.Past(schema.StageDesign) {
		values[llm.PlaceholderDesignSpecs] = in.Artifacts.DesignSpec
		values[llm.PlaceholderDesign] = in.Artifacts.DesignSpec
	}

	if in.Stage.Past(schema.StageDevelopment) {
		values[llm.PlaceholderImpl] = schema.RenderCodeModules(in.Artifacts.CodeModules)
	}

	if in.Stage.Past(schema.StageTesting) {
		values[llm.PlaceholderTestResults] = in.Artifacts.TestResults
	}

	return values
}

// renderConversation flattens the conversation log into the text block
// replayed inside prompts, one speaker-prefixed line per entry.
func renderConversation(entries []schema.ConversationEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry.Speaker())
		sb.WriteString(": ")
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// projectPlan returns the project manager's plan from the conversation log.
// The plan is not a named artifact; it lives as the first project manager
// entry in the log.
func projectPlan(entries []schema.ConversationEntry) string {
	for _, entry := range entries {
		if entry.Kind == schema.EntryAgent && entry.Role == schema.RoleProjectManager {
			return entry.Text
		}
	}
	return ""
}
