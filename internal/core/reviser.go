package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"e2edev/internal/llm"
	"e2edev/internal/llm/agents"
	"e2edev/pkg/schema"
)

// Revision is the result of one feedback-driven artifact revision.
type Revision struct {
	RevisionID    string
	RevisedText   string
	ChangeSummary string
}

// Reviser amends already-produced artifacts with human feedback, outside
// the main stage sequence. It never changes the pipeline stage and works
// on any populated artifact, including after completion.
type Reviser struct {
	completer llm.Completer
}

// NewReviser creates a feedback reviser sharing the pipeline's completion
// client.
func NewReviser(completer llm.Completer) *Reviser {
	return &Reviser{completer: completer}
}

// Revise rewrites the targeted artifact using the feedback text, then asks
// for a natural-language summary of what changed. Empty or whitespace-only
// feedback is rejected before any completion call is made.
func (r *Reviser) Revise(
	ctx context.Context,
	state *PipelineState,
	kind schema.ArtifactKind,
	feedback string,
) (*PipelineState, *Revision, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, nil, &ValidationError{Field: "feedback", Message: "feedback must not be empty"}
	}

	if !state.Artifacts.Has(kind) {
		return nil, nil, &ValidationError{
			Field:   "artifact",
			Message: fmt.Sprintf("artifact %s has not been produced yet", kind),
		}
	}

	original := state.Artifacts.Text(kind)

	revised, err := r.completer.Complete(ctx, llm.BuildRevisionPrompt(kind.Title(), original, feedback))
	if err != nil {
		return nil, nil, fmt.Errorf("revision call: %w", err)
	}

	summary, err := r.completer.Complete(ctx, llm.BuildChangeSummaryPrompt(kind.Title(), original, revised, feedback))
	if err != nil {
		return nil, nil, fmt.Errorf("change summary call: %w", err)
	}

	revisionID, err := schema.NewRevisionID()
	if err != nil {
		return nil, nil, fmt.Errorf("generate revision id: %w", err)
	}

	next := state.Clone()

	switch kind {
	case schema.ArtifactDesignSpec:
		next.Artifacts.DesignSpec = revised
	case schema.ArtifactCodeModules:
		next.Artifacts.CodeModules = agents.ExtractCodeBlocks(revised)
	case schema.ArtifactTestResults:
		next.Artifacts.TestResults = revised
	case schema.ArtifactPresentation:
		next.Artifacts.Presentation = revised
	}

	next.FeedbackHistory[kind] = append(next.FeedbackHistory[kind], FeedbackEntry{
		RevisionID: revisionID,
		Feedback:   feedback,
		Summary:    summary,
		At:         time.Now(),
	})

	return next, &Revision{
		RevisionID:    revisionID,
		RevisedText:   revised,
		ChangeSummary: summary,
	}, nil
}
