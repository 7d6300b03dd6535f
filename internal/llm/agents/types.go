package agents

import (
	"fmt"

	"e2edev/pkg/schema"
)

// Input is the read-only slice of pipeline state a role agent sees. Agents
// never mutate shared state; folding output back in is the controller's job.
type Input struct {
	Requirements string
	Conversation []schema.ConversationEntry
	Stage        schema.Stage
	Artifacts    schema.Artifacts
}

// Validate checks that the input is usable.
func (in *Input) Validate() error {
	if in == nil {
		return fmt.Errorf("input is required")
	}
	if in.Requirements == "" {
		return fmt.Errorf("requirements are required")
	}
	return nil
}

// Output is a role agent's raw generated text.
type Output struct {
	Text string
}
