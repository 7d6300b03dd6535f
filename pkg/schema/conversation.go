package schema

// EntryKind discriminates conversation entries.
type EntryKind string

const (
	EntryHuman EntryKind = "human"
	EntryAgent EntryKind = "agent"
)

// ConversationEntry is one message in the session log: either human input
// or an agent's output attributed to its role.
type ConversationEntry struct {
	Kind EntryKind
	Role Role // set only for agent entries
	Text string
}

// HumanEntry creates a human conversation entry.
func HumanEntry(text string) ConversationEntry {
	return ConversationEntry{Kind: EntryHuman, Text: text}
}

// AgentEntry creates an agent conversation entry attributed to role.
func AgentEntry(role Role, text string) ConversationEntry {
	return ConversationEntry{Kind: EntryAgent, Role: role, Text: text}
}

// Speaker returns the display label used when the conversation is replayed
// into prompts: "Human" for human entries, the role label otherwise.
func (e ConversationEntry) Speaker() string {
	if e.Kind == EntryHuman {
		return "Human"
	}
	return e.Role.Label()
}
