package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInference is a configurable stand-in for the hosted endpoint.
type fakeInference struct {
	streamDeltas   []string // sent as SSE fragments
	streamComplete bool     // whether the stream ends with [DONE]
	streamStatus   int      // non-200 fails the streaming call outright
	blockingReply  string
	blockingStatus int

	streamCalls   atomic.Int32
	blockingCalls atomic.Int32
}

func (f *fakeInference) handler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stream bool `json:"stream"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Stream {
		f.streamCalls.Add(1)
		if f.streamStatus != 0 && f.streamStatus != http.StatusOK {
			w.WriteHeader(f.streamStatus)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, delta := range f.streamDeltas {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", delta)
		}
		if f.streamComplete {
			fmt.Fprint(w, "data: [DONE]\n\n")
		}
		// Otherwise the body just ends: a broken stream.
		return
	}

	f.blockingCalls.Add(1)
	if f.blockingStatus != 0 && f.blockingStatus != http.StatusOK {
		w.WriteHeader(f.blockingStatus)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, "{\"choices\":[{\"message\":{\"role\":\"assistant\",\"content\":%q}}]}", f.blockingReply)
}

func newTestChatbot(t *testing.T, fake *fakeInference) *Chatbot {
	t.Helper()

	db := setupTestDB(t)

	var client *InferenceClient
	if fake != nil {
		server := httptest.NewServer(http.HandlerFunc(fake.handler))
		t.Cleanup(server.Close)
		client = NewInferenceClient("test-token")
		client.baseURL = server.URL
	}

	return NewChatbot(db, client)
}

func TestChatbotStreamingReply(t *testing.T) {
	fake := &fakeInference{
		streamDeltas:   []string{"Hello", " there", "!"},
		streamComplete: true,
	}
	bot := newTestChatbot(t, fake)

	var streamed string
	reply := bot.ReplyStream(context.Background(), "hi", func(delta string) {
		streamed += delta
	})

	assert.Equal(t, "Hello there!", reply)
	assert.Equal(t, "Hello there!", streamed)
	assert.Equal(t, int32(1), fake.streamCalls.Load())
	assert.Equal(t, int32(0), fake.blockingCalls.Load())

	// Both turns recorded.
	assert.Equal(t, 2, bot.history.Len())
}

func TestChatbotBrokenStreamFallsBackToBlocking(t *testing.T) {
	// The stream emits partial text then breaks before completion. The
	// partial "Hello" must be discarded, not returned.
	fake := &fakeInference{
		streamDeltas:   []string{"Hello"},
		streamComplete: false,
		blockingReply:  "Here is the full answer.",
	}
	bot := newTestChatbot(t, fake)

	reply := bot.Reply(context.Background(), "tell me about clubs")

	assert.Equal(t, "Here is the full answer.", reply)
	assert.Equal(t, int32(1), fake.streamCalls.Load())
	assert.Equal(t, int32(1), fake.blockingCalls.Load())
}

func TestChatbotTotalFailureReturnsFallback(t *testing.T) {
	fake := &fakeInference{
		streamStatus:   http.StatusInternalServerError,
		blockingStatus: http.StatusInternalServerError,
	}
	bot := newTestChatbot(t, fake)

	reply := bot.Reply(context.Background(), "hi")

	assert.Equal(t, FallbackReply, reply)
	// A failed exchange is not recorded.
	assert.Equal(t, 0, bot.history.Len())
}

func TestChatbotUnavailableWithoutClient(t *testing.T) {
	bot := newTestChatbot(t, nil)

	assert.False(t, bot.Available())
	assert.Equal(t, UnavailableReply, bot.Reply(context.Background(), "hi"))
	assert.Equal(t, 0, bot.history.Len())
}

func TestChatbotClearHistory(t *testing.T) {
	fake := &fakeInference{streamDeltas: []string{"ok"}, streamComplete: true}
	bot := newTestChatbot(t, fake)

	bot.Reply(context.Background(), "hi")
	require.Equal(t, 2, bot.history.Len())

	bot.ClearHistory()
	assert.Equal(t, 0, bot.history.Len())
	bot.ClearHistory() // idempotent
	assert.Equal(t, 0, bot.history.Len())
}

func TestChatbotSuggestionsReflectCatalogue(t *testing.T) {
	bot := newTestChatbot(t, nil)

	// Empty catalogue: only the canonical prompts.
	assert.Len(t, bot.Suggestions(), 3)
}
