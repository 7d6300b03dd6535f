package core

import (
	"fmt"
	"strings"
	"time"

	"e2edev/pkg/schema"
)

// PipelineState is the session record threaded through every stage. Each
// tick produces a new value from the old one plus one role output; shared
// state is never mutated in place.
type PipelineState struct {
	SessionID    string
	Requirements string // immutable once set at session start
	Conversation []schema.ConversationEntry
	Stage        schema.Stage
	ActiveRole   schema.Role
	Artifacts    schema.Artifacts

	// FeedbackHistory records feedback-driven revisions per artifact kind,
	// separate from the main conversation log.
	FeedbackHistory map[schema.ArtifactKind][]FeedbackEntry
}

// FeedbackEntry is one feedback-driven revision of an artifact.
type FeedbackEntry struct {
	RevisionID string
	Feedback   string
	Summary    string
	At         time.Time
}

// Ingest constructs the initial pipeline state from extracted document
// text. Text with no usable content fails with *ExtractionError and the
// pipeline does not start.
func Ingest(documentText string) (*PipelineState, error) {
	requirements := strings.TrimSpace(documentText)
	if requirements == "" {
		return nil, &ExtractionError{Message: "document produced no usable text"}
	}

	sessionID, err := schema.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	return &PipelineState{
		SessionID:       sessionID,
		Requirements:    requirements,
		Conversation:    make([]schema.ConversationEntry, 0),
		Stage:           schema.StageRequirements,
		ActiveRole:      schema.RoleProjectManager,
		FeedbackHistory: make(map[schema.ArtifactKind][]FeedbackEntry),
	}, nil
}

// AddAgent appends an agent output to the conversation log.
func (s *PipelineState) AddAgent(role schema.Role, text string) {
	s.Conversation = append(s.Conversation, schema.AgentEntry(role, text))
}

// AddHuman appends a human entry to the conversation log.
func (s *PipelineState) AddHuman(text string) {
	s.Conversation = append(s.Conversation, schema.HumanEntry(text))
}

// Complete reports whether the pipeline has reached the terminal stage.
func (s *PipelineState) Complete() bool {
	return s.Stage == schema.StageComplete
}

// Clone creates a deep copy of the pipeline state.
func (s *PipelineState) Clone() *PipelineState {
	clone := &PipelineState{
		SessionID:       s.SessionID,
		Requirements:    s.Requirements,
		Conversation:    make([]schema.ConversationEntry, len(s.Conversation)),
		Stage:           s.Stage,
		ActiveRole:      s.ActiveRole,
		Artifacts:       s.Artifacts.Clone(),
		FeedbackHistory: make(map[schema.ArtifactKind][]FeedbackEntry, len(s.FeedbackHistory)),
	}

	copy(clone.Conversation, s.Conversation)

	for kind, entries := range s.FeedbackHistory {
		cloned := make([]FeedbackEntry, len(entries))
		copy(cloned, entries)
		clone.FeedbackHistory[kind] = cloned
	}

	return clone
}
