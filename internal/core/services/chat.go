package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// chatSystemPrompt instructs the model to stay grounded in the retrieved
// documentation.
const chatSystemPrompt = `You are an assistant that answers questions about the organisation's APIs.
Answer using only the API documentation provided below. When the
documentation does not cover the question, say so instead of guessing.

%s`

// noContextNote replaces the documentation block when retrieval returned
// nothing for the turn.
const noContextNote = "(No relevant API documentation was found for this question.)"

// maxHistoryTurns bounds the conversation window sent to the model.
const maxHistoryTurns = 20

// Ensure Chat implements the interface.
var _ driving.ChatService = (*Chat)(nil)

// Chat is the retrieval-augmented conversational client. Each turn
// retrieves ranked snippets for the user message from every registered
// source, grounds the completion on them, and appends the exchange to the
// in-memory history.
type Chat struct {
	registry   *SourceRegistry
	completion driven.CompletionService
	sessionID  string
	history    []driven.ChatMessage
	topK       int
}

// NewChat creates a chat service. The completion service is required; the
// registry may hold zero sources, in which case every turn runs ungrounded.
func NewChat(registry *SourceRegistry, completion driven.CompletionService) *Chat {
	return &Chat{
		registry:   registry,
		completion: completion,
		sessionID:  uuid.NewString(),
		topK:       domain.DefaultTopK,
	}
}

// Reply answers one user message.
//
// A retrieval failure has already degraded to zero snippets inside the
// sources; a completion failure becomes the visible reply text so the
// interactive loop keeps running. The error return is reserved for
// misconfiguration (no completion service).
func (c *Chat) Reply(ctx context.Context, message string) (string, error) {
	if c.completion == nil {
		return "", domain.ErrLLMUnavailable
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: empty message", domain.ErrInvalidInput)
	}

	snippets := c.retrieve(ctx, message)
	system := driven.ChatMessage{
		Role:    "system",
		Content: fmt.Sprintf(chatSystemPrompt, formatContext(snippets)),
	}

	messages := make([]driven.ChatMessage, 0, len(c.history)+2)
	messages = append(messages, system)
	messages = append(messages, c.history...)
	messages = append(messages, driven.ChatMessage{Role: "user", Content: message})

	reply, err := c.completion.Chat(ctx, messages, driven.ChatOptions{})
	if err != nil {
		logger.Warn("Completion failed: %v", err)
		reply = fmt.Sprintf("Sorry, I could not generate a response: %v", err)
	}

	c.history = append(c.history,
		driven.ChatMessage{Role: "user", Content: message},
		driven.ChatMessage{Role: "assistant", Content: reply},
	)
	c.trimHistory()
	return reply, nil
}

// retrieve gathers snippets for the message from all registered sources, in
// registration order.
func (c *Chat) retrieve(ctx context.Context, message string) []domain.Snippet {
	if c.registry == nil {
		return nil
	}
	var snippets []domain.Snippet
	for _, source := range c.registry.Sources() {
		found := source.Retrieve(ctx, message, c.topK)
		logger.Debug("Source %s returned %d snippet(s)", source.Name(), len(found))
		snippets = append(snippets, found...)
	}
	return snippets
}

// Reset clears the conversation history and starts a new session.
func (c *Chat) Reset() {
	c.history = nil
	c.sessionID = uuid.NewString()
}

// SessionID identifies the current conversation.
func (c *Chat) SessionID() string {
	return c.sessionID
}

// trimHistory drops the oldest exchanges beyond the window.
func (c *Chat) trimHistory() {
	max := maxHistoryTurns * 2
	if len(c.history) > max {
		c.history = c.history[len(c.history)-max:]
	}
}

// formatContext renders retrieved snippets as the documentation block of
// the system prompt.
func formatContext(snippets []domain.Snippet) string {
	if len(snippets) == 0 {
		return noContextNote
	}
	var b strings.Builder
	for i, s := range snippets {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s", i+1, s.Title, s.Reference, s.Content)
	}
	return b.String()
}
