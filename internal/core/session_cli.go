package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"e2edev/pkg/schema"
)

// CLISession manages an interactive pipeline session: one tick per command
// in interactive mode, or a full run with progress output in batch mode.
type CLISession struct {
	State      *PipelineState
	Controller *Controller
	Reviser    *Reviser

	In  io.Reader
	Out io.Writer
}

// NewCLISession creates a session with an AgentExecutor and a Reviser.
func NewCLISession(executor AgentExecutor, reviser *Reviser) *CLISession {
	return &CLISession{
		Controller: NewController(executor),
		Reviser:    reviser,
		In:         os.Stdin,
		Out:        os.Stdout,
	}
}

// Start ingests the requirements document and initializes session state.
func (s *CLISession) Start(documentText string) error {
	state, err := Ingest(documentText)
	if err != nil {
		return err
	}
	s.State = state
	return nil
}

// Reset discards the session state. Nothing is persisted.
func (s *CLISession) Reset() {
	s.State = nil
}

// RunBatch drives the pipeline to completion unattended, printing a
// progress percentage after each stage.
func (s *CLISession) RunBatch(ctx context.Context) error {
	if s.State == nil {
		return fmt.Errorf("session not started")
	}

	for !s.State.Complete() {
		role := s.State.ActiveRole
		fmt.Fprintf(s.Out, "🤖 %s is working...\n", role.Label())

		next, err := s.Controller.Tick(ctx, s.State)
		if err != nil {
			return fmt.Errorf("tick failed: %w", err)
		}
		s.State = next

		fmt.Fprintf(s.Out, "   Progress: %d%%\n", s.progress())
	}

	fmt.Fprintln(s.Out, "✨ Development process complete!")
	return nil
}

// RunInteractive drives the pipeline one stage per command and accepts
// feedback on completed artifacts at any point, including after the final
// stage.
func (s *CLISession) RunInteractive(ctx context.Context) error {
	if s.State == nil {
		return fmt.Errorf("session not started")
	}

	reader := bufio.NewReader(s.In)

	for {
		s.printStatus()

		if s.State.Complete() {
			fmt.Fprint(s.Out, "\n[feedback <kind>: <text> / quit]: ")
		} else {
			fmt.Fprintf(s.Out, "\n[enter = let %s work / feedback <kind>: <text> / quit]: ", s.State.ActiveRole.Label())
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "quit" || line == "q":
			return nil

		case strings.HasPrefix(line, "feedback "):
			if err := s.handleFeedback(ctx, strings.TrimPrefix(line, "feedback ")); err != nil {
				fmt.Fprintf(s.Out, "❌ %v\n", err)
			}

		case line == "":
			if s.State.Complete() {
				continue
			}
			role := s.State.ActiveRole
			fmt.Fprintf(s.Out, "🤖 %s is working...\n", role.Label())

			next, err := s.Controller.Tick(ctx, s.State)
			if err != nil {
				return fmt.Errorf("tick failed: %w", err)
			}
			s.State = next

			last := s.State.Conversation[len(s.State.Conversation)-1]
			fmt.Fprintf(s.Out, "\n%s:\n%s\n", last.Speaker(), last.Text)

		default:
			fmt.Fprintf(s.Out, "❓ Unrecognized command: %q\n", line)
		}
	}
}

// handleFeedback parses "<kind>: <text>" and revises the targeted artifact.
func (s *CLISession) handleFeedback(ctx context.Context, arg string) error {
	kindStr, text, found := strings.Cut(arg, ":")
	if !found {
		return fmt.Errorf("expected feedback <kind>: <text>")
	}

	kind, err := schema.ParseArtifactKind(kindStr)
	if err != nil {
		return err
	}

	next, revision, err := s.Reviser.Revise(ctx, s.State, kind, text)
	if err != nil {
		return err
	}

	// Mirror the human feedback into the conversation so the chat log
	// shows who asked for the change.
	next.AddHuman(fmt.Sprintf("Feedback on %s: %s", kind.Title(), strings.TrimSpace(text)))
	s.State = next

	fmt.Fprintf(s.Out, "📝 %s revised (%s)\n", kind.Title(), revision.RevisionID)
	fmt.Fprintf(s.Out, "   Changes: %s\n", revision.ChangeSummary)
	return nil
}

// printStatus renders the stage checklist.
func (s *CLISession) printStatus() {
	fmt.Fprintln(s.Out)
	for _, stage := range schema.Stages() {
		marker := "⬜"
		switch {
		case s.State.Stage.Past(stage):
			marker = "✅"
		case s.State.Stage == stage:
			marker = "→ "
		}
		fmt.Fprintf(s.Out, "%s %s\n", marker, stageTitle(stage))
	}
}

// progress returns batch completion as a percentage of stages passed.
func (s *CLISession) progress() int {
	return s.State.Stage.Index() * 100 / len(schema.Stages())
}

// stageTitle renders a stage name for display.
func stageTitle(stage schema.Stage) string {
	name := string(stage)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
