package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"e2edev/internal/llm"
	"e2edev/pkg/schema"
)

func TestRenderConversation(t *testing.T) {
	entries := []schema.ConversationEntry{
		schema.AgentEntry(schema.RoleProjectManager, "the plan"),
		schema.HumanEntry("looks good"),
		schema.AgentEntry(schema.RoleDesigner, "the design"),
	}

	rendered := renderConversation(entries)

	assert.Equal(t, "Project Manager: the plan\nHuman: looks good\nDesigner: the design\n", rendered)
	assert.Empty(t, renderConversation(nil))
}

func TestPlaceholderValues_GatesByStage(t *testing.T) {
	in := &Input{
		Requirements: "build a todo app",
		Conversation: []schema.ConversationEntry{
			schema.AgentEntry(schema.RoleProjectManager, "the plan"),
		},
		Stage: schema.StageDesign,
		Artifacts: schema.Artifacts{
			// Populated out of band; must stay invisible at the design stage.
			DesignSpec:  "should not leak",
			TestResults: "should not leak either",
		},
	}

	values := placeholderValues(in)

	assert.Equal(t, "build a todo app", values[llm.PlaceholderRequirements])
	assert.Equal(t, "the plan", values[llm.PlaceholderProjectPlan],
		"design stage is past requirements, so the plan is visible")
	assert.Empty(t, values[llm.PlaceholderDesignSpecs],
		"design stage must not see the design spec it is about to produce")
	assert.Empty(t, values[llm.PlaceholderImpl])
	assert.Empty(t, values[llm.PlaceholderTestResults])
}

func TestPlaceholderValues_PresentationSeesEverything(t *testing.T) {
	in := &Input{
		Requirements: "build a todo app",
		Conversation: []schema.ConversationEntry{
			schema.AgentEntry(schema.RoleProjectManager, "the plan"),
		},
		Stage: schema.StagePresentation,
		Artifacts: schema.Artifacts{
			DesignSpec: "the spec",
			CodeModules: []schema.CodeModule{
				{Name: "module_1", Language: "python", Source: "x = 1"},
			},
			TestResults: "all green",
		},
	}

	values := placeholderValues(in)

	assert.Equal(t, "the spec", values[llm.PlaceholderDesignSpecs])
	assert.Equal(t, "the spec", values[llm.PlaceholderDesign])
	assert.Contains(t, values[llm.PlaceholderImpl], "```python")
	assert.Equal(t, "all green", values[llm.PlaceholderTestResults])
}

func TestPlaceholderValues_RequirementsStageSeesOnlyBasics(t *testing.T) {
	in := &Input{
		Requirements: "build a todo app",
		Stage:        schema.StageRequirements,
	}

	values := placeholderValues(in)

	assert.Equal(t, "build a todo app", values[llm.PlaceholderRequirements])
	_, hasPlan := values[llm.PlaceholderProjectPlan]
	assert.False(t, hasPlan, "requirements stage has no plan to replay")
}

func TestProjectPlan_IgnoresHumanAndOtherRoles(t *testing.T) {
	entries := []schema.ConversationEntry{
		schema.HumanEntry("hello"),
		schema.AgentEntry(schema.RoleDesigner, "design first?"),
		schema.AgentEntry(schema.RoleProjectManager, "the actual plan"),
	}

	assert.Equal(t, "the actual plan", projectPlan(entries))
	assert.Empty(t, projectPlan(nil))
}
