package rag

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. Assistant messages keep the
// citations of the answer that produced them.
type Message struct {
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Citations []SourceCitation `json:"citations,omitempty"`
}

// Conversation is an append-only, ordered history owned by the caller. The
// engine never stores conversations; each turn returns a new value so two
// conversations can be threaded through the same engine independently.
type Conversation struct {
	messages []Message
}

// Messages returns a copy of the history in order.
func (c Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)

	return out
}

// Len returns the number of turns in the conversation.
func (c Conversation) Len() int {
	return len(c.messages)
}

// WithUser returns a new conversation with a user turn appended.
func (c Conversation) WithUser(content string) Conversation {
	return c.appended(Message{Role: RoleUser, Content: content})
}

// WithAssistant returns a new conversation with an assistant turn appended.
func (c Conversation) WithAssistant(content string, citations []SourceCitation) Conversation {
	return c.appended(Message{Role: RoleAssistant, Content: content, Citations: citations})
}

func (c Conversation) appended(msg Message) Conversation {
	messages := make([]Message, len(c.messages), len(c.messages)+1)
	copy(messages, c.messages)

	return Conversation{messages: append(messages, msg)}
}
