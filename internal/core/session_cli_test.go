package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2edev/internal/llm"
	"e2edev/pkg/schema"
)

func newTestSession(t *testing.T, executor AgentExecutor, completer llm.Completer) (*CLISession, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	session := NewCLISession(executor, NewReviser(completer))
	session.Out = out

	require.NoError(t, session.Start("Build a to-do list app with login."))
	return session, out
}

func TestCLISession_RunBatch(t *testing.T) {
	mock := NewMockAgentExecutor()
	session, out := newTestSession(t, mock, &llm.MockCompleter{})

	err := session.RunBatch(context.Background())
	require.NoError(t, err)

	assert.True(t, session.State.Complete())
	assert.Equal(t, 5, mock.TotalCalls())
	assert.Contains(t, out.String(), "Project Manager is working...")
	assert.Contains(t, out.String(), "Progress: 100%")
	assert.Contains(t, out.String(), "Development process complete!")
}

func TestCLISession_RunBatch_NotStarted(t *testing.T) {
	session := NewCLISession(NewMockAgentExecutor(), NewReviser(&llm.MockCompleter{}))
	session.Out = &bytes.Buffer{}

	err := session.RunBatch(context.Background())
	assert.Error(t, err)
}

func TestCLISession_RunInteractive_TicksAndQuits(t *testing.T) {
	mock := NewMockAgentExecutor()
	session, out := newTestSession(t, mock, &llm.MockCompleter{})
	session.In = strings.NewReader("\n\nquit\n")

	err := session.RunInteractive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, schema.StageDevelopment, session.State.Stage, "two empty commands advance two stages")
	assert.Equal(t, 2, mock.TotalCalls())
	assert.Contains(t, out.String(), mock.ProjectManagerOutput.Text)
}

func TestCLISession_RunInteractive_EOFEndsSession(t *testing.T) {
	session, _ := newTestSession(t, NewMockAgentExecutor(), &llm.MockCompleter{})
	session.In = strings.NewReader("\n")

	err := session.RunInteractive(context.Background())
	assert.NoError(t, err, "EOF is a normal exit")
}

func TestCLISession_RunInteractive_Feedback(t *testing.T) {
	mock := NewMockAgentExecutor()
	completer := &llm.MockCompleter{
		Responses: []string{"revised spec", "moved login to its own screen"},
	}
	session, out := newTestSession(t, mock, completer)

	// Reach the design artifact, revise it, then quit.
	session.In = strings.NewReader("\n\nfeedback design_spec: split the login screen\nquit\n")

	err := session.RunInteractive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "revised spec", session.State.Artifacts.DesignSpec)
	assert.Contains(t, out.String(), "Design Specifications revised")
	assert.Contains(t, out.String(), "moved login to its own screen")

	// The human feedback is mirrored into the conversation.
	last := session.State.Conversation[len(session.State.Conversation)-1]
	assert.Equal(t, schema.EntryHuman, last.Kind)
	assert.Contains(t, last.Text, "split the login screen")
}

func TestCLISession_RunInteractive_BadFeedbackReported(t *testing.T) {
	session, out := newTestSession(t, NewMockAgentExecutor(), &llm.MockCompleter{})
	session.In = strings.NewReader("feedback design_spec: too early\nquit\n")

	err := session.RunInteractive(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "❌", "unproduced artifact feedback is reported, not fatal")
	assert.Equal(t, schema.StageRequirements, session.State.Stage)
}

func TestCLISession_Reset(t *testing.T) {
	session, _ := newTestSession(t, NewMockAgentExecutor(), &llm.MockCompleter{})
	require.NotNil(t, session.State)

	session.Reset()
	assert.Nil(t, session.State)
}
