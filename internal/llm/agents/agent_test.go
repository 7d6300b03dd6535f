package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2edev/internal/llm"
	"e2edev/pkg/schema"
)

func TestNew(t *testing.T) {
	completer := &llm.MockCompleter{}

	agent, err := New(schema.RoleDesigner, completer)
	require.NoError(t, err)
	assert.Equal(t, schema.RoleDesigner, agent.Role())

	_, err = New(schema.Role("intern"), completer)
	var unknownErr *llm.UnknownRoleError
	require.ErrorAs(t, err, &unknownErr, "invalid roles must fail with UnknownRoleError")

	_, err = New(schema.RoleDesigner, nil)
	assert.Error(t, err, "a completer is required")
}

func TestAgent_Run(t *testing.T) {
	completer := &llm.MockCompleter{Responses: []string{"generated design"}}
	agent, err := New(schema.RoleDesigner, completer)
	require.NoError(t, err)

	in := &Input{
		Requirements: "build a todo app with login",
		Conversation: []schema.ConversationEntry{
			schema.AgentEntry(schema.RoleProjectManager, "the plan"),
		},
		Stage: schema.StageDesign,
	}

	out, err := agent.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "generated design", out.Text)

	prompt := completer.LastPrompt()
	assert.Contains(t, prompt, "You are the UI/UX Designer")
	assert.Contains(t, prompt, "build a todo app with login")
	assert.Contains(t, prompt, "Project Manager: the plan")
	assert.NotContains(t, prompt, "{", "no placeholder may survive rendering")
	assert.Equal(t, 1, completer.Calls, "one run, one completion call")
}

func TestAgent_Run_ValidatesInput(t *testing.T) {
	completer := &llm.MockCompleter{}
	agent, err := New(schema.RoleTester, completer)
	require.NoError(t, err)

	_, err = agent.Run(context.Background(), &Input{})
	assert.Error(t, err)
	assert.Zero(t, completer.Calls, "invalid input must not reach the completion service")

	_, err = agent.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestAgent_Run_PropagatesCompleterError(t *testing.T) {
	completer := &llm.MockCompleter{Err: errors.New("wire broke")}
	agent, err := New(schema.RolePresenter, completer)
	require.NoError(t, err)

	_, err = agent.Run(context.Background(), &Input{Requirements: "app"})
	assert.Error(t, err)
}
