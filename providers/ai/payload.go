package ai

// MessageRole represents the role of a conversation message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single conversation message. Ordering within a payload is
// significant and is preserved by every adapter transformation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Payload is the generic, vendor-agnostic request structure: an ordered
// message list under "messages" plus an open set of sampling and control
// options (model, temperature, max_tokens, stream, tools, ...) as named
// fields. Adapters transform it into their wire shape; only recognized
// fields survive filtering.
type Payload map[string]any

// Messages returns the payload's message list, or nil if absent or not a
// message slice.
func (p Payload) Messages() []Message {
	messages, _ := p["messages"].([]Message)
	return messages
}

// Clone returns a shallow copy of the payload. Adapters use it to normalize
// without mutating the caller's map.
func (p Payload) Clone() Payload {
	clone := make(Payload, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}

// FilterParams returns a new payload containing exactly the intersection of
// payload's keys and allowed, with values copied unchanged. Pure: the input
// payload is never modified, and no field outside allowed is introduced.
// Every adapter uses this to strip application-internal fields before
// transmission.
func FilterParams(allowed []string, payload Payload) Payload {
	filtered := make(Payload, len(allowed))
	for _, name := range allowed {
		if value, ok := payload[name]; ok {
			filtered[name] = value
		}
	}
	return filtered
}
