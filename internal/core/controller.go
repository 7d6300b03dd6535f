package core

import (
	"context"
	"fmt"

	"e2edev/internal/llm"
	"e2edev/internal/llm/agents"
	"e2edev/pkg/schema"
)

// Controller drives the five-stage pipeline. Each Tick runs exactly the
// role agent owning the current stage, folds its output into a fresh copy
// of the state, and advances one stage. Stages are never skipped or
// reordered.
type Controller struct {
	executor AgentExecutor
}

// NewController creates a stage controller with an AgentExecutor.
func NewController(executor AgentExecutor) *Controller {
	return &Controller{executor: executor}
}

// NewControllerWithCompleter creates a controller whose agents run against
// a real completion client.
func NewControllerWithCompleter(completer llm.Completer) *Controller {
	return &Controller{executor: NewRealAgentExecutor(completer)}
}

// Tick advances the pipeline by exactly one stage. On the terminal stage it
// is a no-op and returns the state unchanged. An exhausted completion is
// recorded as the sentinel text and the stage still advances; the pipeline
// never blocks on a failed call.
func (c *Controller) Tick(ctx context.Context, state *PipelineState) (*PipelineState, error) {
	if state == nil {
		return nil, fmt.Errorf("pipeline state is required")
	}

	if state.Complete() {
		return state, nil
	}

	role, ok := state.Stage.Role()
	if !ok {
		return nil, fmt.Errorf("stage %s has no owning role", state.Stage)
	}

	in := &agents.Input{
		Requirements: state.Requirements,
		Conversation: append([]schema.ConversationEntry(nil), state.Conversation...),
		Stage:        state.Stage,
		Artifacts:    state.Artifacts.Clone(),
	}

	var (
		out *agents.Output
		err error
	)

	switch state.Stage {
	case schema.StageRequirements:
		out, err = c.executor.ExecuteProjectManager(ctx, in)
	case schema.StageDesign:
		out, err = c.executor.ExecuteDesigner(ctx, in)
	case schema.StageDevelopment:
		out, err = c.executor.ExecuteDeveloper(ctx, in)
	case schema.StageTesting:
		out, err = c.executor.ExecuteTester(ctx, in)
	case schema.StagePresentation:
		out, err = c.executor.ExecutePresenter(ctx, in)
	default:
		return nil, fmt.Errorf("unexpected stage: %s", state.Stage)
	}

	text := ""
	switch {
	case err != nil:
		// Error visibility is pushed to the display layer; the stage
		// advances with the sentinel as its content.
		text = llm.Sentinel(err)
	case out != nil:
		text = out.Text
	}

	next := state.Clone()
	next.AddAgent(role, text)

	switch state.Stage {
	case schema.StageRequirements:
		// The project plan lives in the conversation log only.
	case schema.StageDesign:
		next.Artifacts.DesignSpec = text
	case schema.StageDevelopment:
		next.Artifacts.CodeModules = agents.ExtractCodeBlocks(text)
	case schema.StageTesting:
		next.Artifacts.TestResults = text
	case schema.StagePresentation:
		next.Artifacts.Presentation = text
	}

	next.Stage = state.Stage.Next()
	if nextRole, ok := next.Stage.Role(); ok {
		next.ActiveRole = nextRole
	}

	return next, nil
}

// Run drives Tick until the pipeline completes (batch mode). The contract
// per tick is identical to interactive driving.
func (c *Controller) Run(ctx context.Context, state *PipelineState) (*PipelineState, error) {
	for !state.Complete() {
		next, err := c.Tick(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("tick at stage %s: %w", state.Stage, err)
		}
		state = next
	}
	return state, nil
}
