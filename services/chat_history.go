// services/chat_history.go - Bounded conversation window
package services

import "sync"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

const defaultHistoryWindow = 5

// ConversationHistory keeps the most recent turns of the single, process-wide
// conversation. With window K it retains at most 2K entries (K user turns and
// the K assistant turns that follow them), trimming from the front. There is
// no persistence; a restart starts a fresh conversation.
type ConversationHistory struct {
	mu     sync.Mutex
	turns  []ChatTurn
	window int
}

func NewConversationHistory(window int) *ConversationHistory {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &ConversationHistory{window: window}
}

func (h *ConversationHistory) Append(role ChatRole, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns = append(h.turns, ChatTurn{Role: role, Content: content})
	if max := h.window * 2; len(h.turns) > max {
		trimmed := make([]ChatTurn, max)
		copy(trimmed, h.turns[len(h.turns)-max:])
		h.turns = trimmed
	}
}

// Recent returns the last `window` turns in order, the slice the prompt is
// built from.
func (h *ConversationHistory) Recent() []ChatTurn {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := 0
	if len(h.turns) > h.window {
		start = len(h.turns) - h.window
	}
	out := make([]ChatTurn, len(h.turns)-start)
	copy(out, h.turns[start:])
	return out
}

func (h *ConversationHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

// Clear resets the conversation. Idempotent.
func (h *ConversationHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}
