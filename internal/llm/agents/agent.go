package agents

import (
	"context"
	"fmt"

	"e2edev/internal/llm"
	"e2edev/pkg/schema"
)

// Agent binds a role to a completion client. Running it renders the role's
// prompt template against the pipeline state and returns the generated text.
type Agent struct {
	role      schema.Role
	completer llm.Completer
}

// New creates an agent for the given role.
func New(role schema.Role, completer llm.Completer) (*Agent, error) {
	if !role.Valid() {
		return nil, &llm.UnknownRoleError{Role: string(role)}
	}
	if completer == nil {
		return nil, fmt.Errorf("completer is required")
	}
	return &Agent{role: role, completer: completer}, nil
}

// Role returns the agent's role.
func (a *Agent) Role() schema.Role {
	return a.role
}

// Run renders the conversation log, selects the placeholder values this
// role's stage is allowed to see, instantiates the template, and calls the
// completion service.
func (a *Agent) Run(ctx context.Context, in *Input) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.role, err)
	}

	tmpl, err := llm.Template(a.role)
	if err != nil {
		return nil, err
	}

	prompt := llm.RenderTemplate(tmpl, placeholderValues(in))

	text, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", a.role, err)
	}

	return &Output{Text: text}, nil
}
