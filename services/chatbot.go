// services/chatbot.go - Assistant pipeline orchestrator
package services

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Generation parameters, matched to the hosted model's free tier.
const (
	replyMaxTokens   = 300
	replyTemperature = 0.7
)

// Fixed user-facing strings. The chat widget must never surface a hard
// failure, so every failure mode maps to one of these.
const (
	UnavailableReply = "Sorry, the assistant isn't set up right now. Please try again later! 🙏"
	FallbackReply    = "I'm having trouble connecting right now. Please try again in a moment! 🔄"
)

// ErrChatbotUnavailable signals that no inference credential was configured.
var ErrChatbotUnavailable = errors.New("assistant client is not configured")

// Chatbot answers student questions grounded on the live catalogue. One
// instance serves the whole process; the conversation window is shared
// across callers (an accepted limitation, not multi-tenant isolation).
type Chatbot struct {
	db      *gorm.DB
	client  *InferenceClient
	history *ConversationHistory
}

// NewChatbot wires the pipeline. client may be nil (missing credential), in
// which case every reply degrades to a fixed apology without network I/O.
func NewChatbot(db *gorm.DB, client *InferenceClient) *Chatbot {
	return &Chatbot{
		db:      db,
		client:  client,
		history: NewConversationHistory(historyWindowFromEnv()),
	}
}

// Available reports whether the inference client was constructed.
func (b *Chatbot) Available() bool {
	return b.client != nil
}

// Reply runs the full pipeline for one user message: fresh snapshot, prompt,
// recent turns, inference call, history update. It never returns an error;
// failures degrade to fixed strings.
func (b *Chatbot) Reply(ctx context.Context, userMessage string) string {
	return b.reply(ctx, userMessage, nil)
}

// ReplyStream behaves like Reply but forwards streamed fragments to onDelta
// as they arrive. If the stream breaks the blocking fallback runs and the
// returned text is authoritative; callers must replace anything they
// rendered from fragments.
func (b *Chatbot) ReplyStream(ctx context.Context, userMessage string, onDelta func(string)) string {
	return b.reply(ctx, userMessage, onDelta)
}

func (b *Chatbot) reply(ctx context.Context, userMessage string, onDelta func(string)) string {
	if b.client == nil {
		return UnavailableReply
	}

	snap := CollectSnapshot(b.db)
	messages := make([]ChatMessage, 0, b.history.Len()+2)
	messages = append(messages, ChatMessage{Role: "system", Content: BuildSystemPrompt(snap)})
	for _, turn := range b.history.Recent() {
		messages = append(messages, ChatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	messages = append(messages, ChatMessage{Role: string(RoleUser), Content: userMessage})

	text, err := b.client.ChatCompletionStream(ctx, messages, replyMaxTokens, replyTemperature, onDelta)
	if err != nil {
		log.Printf("⚠️  Chatbot: streaming call failed, retrying blocking: %v", err)
		text, err = b.client.ChatCompletion(ctx, messages, replyMaxTokens, replyTemperature)
	}
	if err != nil {
		log.Printf("❌ Chatbot: completion failed: %v", err)
		return FallbackReply
	}

	text = strings.TrimSpace(text)
	b.history.Append(RoleUser, userMessage)
	b.history.Append(RoleAssistant, text)
	return text
}

// Suggestions derives quick-reply prompts from the current catalogue.
func (b *Chatbot) Suggestions() []string {
	return QuickSuggestions(CollectSnapshot(b.db))
}

// ClearHistory resets the conversation window. Idempotent.
func (b *Chatbot) ClearHistory() {
	b.history.Clear()
}

func historyWindowFromEnv() int {
	if val := os.Getenv("CHAT_HISTORY_WINDOW"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultHistoryWindow
}
