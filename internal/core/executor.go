package core

import (
	"context"

	"e2edev/internal/llm"
	"e2edev/internal/llm/agents"
	"e2edev/pkg/schema"
)

// AgentExecutor abstracts role agent execution for testability. One method
// per role keeps the stage controller's dispatch exhaustive at compile time.
type AgentExecutor interface {
	ExecuteProjectManager(ctx context.Context, in *agents.Input) (*agents.Output, error)
	ExecuteDesigner(ctx context.Context, in *agents.Input) (*agents.Output, error)
	ExecuteDeveloper(ctx context.Context, in *agents.Input) (*agents.Output, error)
	ExecuteTester(ctx context.Context, in *agents.Input) (*agents.Output, error)
	ExecutePresenter(ctx context.Context, in *agents.Input) (*agents.Output, error)
}

// RealAgentExecutor implements AgentExecutor by running role agents against
// a shared completion client.
type RealAgentExecutor struct {
	completer llm.Completer
}

// NewRealAgentExecutor creates an executor backed by real completion calls.
func NewRealAgentExecutor(completer llm.Completer) *RealAgentExecutor {
	return &RealAgentExecutor{completer: completer}
}

func (e *RealAgentExecutor) run(ctx context.Context, role schema.Role, in *agents.Input) (*agents.Output, error) {
	agent, err := agents.New(role, e.completer)
	if err != nil {
		return nil, err
	}
	return agent.Run(ctx, in)
}

func (e *RealAgentExecutor) ExecuteProjectManager(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	return e.run(ctx, schema.RoleProjectManager, in)
}

func (e *RealAgentExecutor) ExecuteDesigner(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	return e.run(ctx, schema.RoleDesigner, in)
}

func (e *RealAgentExecutor) ExecuteDeveloper(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	return e.run(ctx, schema.RoleDeveloper, in)
}

func (e *RealAgentExecutor) ExecuteTester(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	return e.run(ctx, schema.RoleTester, in)
}

func (e *RealAgentExecutor) ExecutePresenter(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	return e.run(ctx, schema.RolePresenter, in)
}

// MockAgentExecutor implements AgentExecutor for testing with canned
// responses, per-role error injection, and call counters.
type MockAgentExecutor struct {
	ProjectManagerOutput *agents.Output
	DesignerOutput       *agents.Output
	DeveloperOutput      *agents.Output
	TesterOutput         *agents.Output
	PresenterOutput      *agents.Output

	ProjectManagerError error
	DesignerError       error
	DeveloperError      error
	TesterError         error
	PresenterError      error

	ProjectManagerCalls int
	DesignerCalls       int
	DeveloperCalls      int
	TesterCalls         int
	PresenterCalls      int

	// Inputs records the input each call received, in order.
	Inputs []*agents.Input
}

// NewMockAgentExecutor creates a mock executor with default successful
// responses for every role. The developer response carries a single fenced
// python block so extraction paths are exercised.
func NewMockAgentExecutor() *MockAgentExecutor {
	return &MockAgentExecutor{
		ProjectManagerOutput: &agents.Output{
			Text: "Project scope: a to-do application.\nMilestones: design, build, test, present.",
		},
		DesignerOutput: &agents.Output{
			Text: "Wireframes: login screen, task list screen.\nComponents: task card, add-task form.",
		},
		DeveloperOutput: &agents.Output{
			Text: "Architecture overview.\n\n```python\ndef add_task(tasks, title):\n    tasks.append(title)\n    return tasks\n```\n",
		},
		TesterOutput: &agents.Output{
			Text: "Test plan: cover login and task CRUD.\nAll scenarios pass.",
		},
		PresenterOutput: &agents.Output{
			Text: "Introducing the to-do app: log in, manage tasks, stay organized.",
		},
	}
}

func (m *MockAgentExecutor) ExecuteProjectManager(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	m.ProjectManagerCalls++
	m.Inputs = append(m.Inputs, in)
	if m.ProjectManagerError != nil {
		return nil, m.ProjectManagerError
	}
	return m.ProjectManagerOutput, nil
}

func (m *MockAgentExecutor) ExecuteDesigner(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	m.DesignerCalls++
	m.Inputs = append(m.Inputs, in)
	if m.DesignerError != nil {
		return nil, m.DesignerError
	}
	return m.DesignerOutput, nil
}

func (m *MockAgentExecutor) ExecuteDeveloper(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	m.DeveloperCalls++
	m.Inputs = append(m.Inputs, in)
	if m.DeveloperError != nil {
		return nil, m.DeveloperError
	}
	return m.DeveloperOutput, nil
}

func (m *MockAgentExecutor) ExecuteTester(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	m.TesterCalls++
	m.Inputs = append(m.Inputs, in)
	if m.TesterError != nil {
		return nil, m.TesterError
	}
	return m.TesterOutput, nil
}

func (m *MockAgentExecutor) ExecutePresenter(ctx context.Context, in *agents.Input) (*agents.Output, error) {
	m.PresenterCalls++
	m.Inputs = append(m.Inputs, in)
	if m.PresenterError != nil {
		return nil, m.PresenterError
	}
	return m.PresenterOutput, nil
}

// TotalCalls returns the number of agent invocations across all roles.
func (m *MockAgentExecutor) TotalCalls() int {
	return m.ProjectManagerCalls + m.DesignerCalls + m.DeveloperCalls + m.TesterCalls + m.PresenterCalls
}
