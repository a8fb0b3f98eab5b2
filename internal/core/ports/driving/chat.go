package driving

import "context"

// ChatService conducts a retrieval-augmented conversation over the corpus.
type ChatService interface {
	// Reply answers one user message, grounding the completion in
	// retrieved snippets. A completion backend failure is returned as the
	// reply text, not an error: the interactive loop must keep running.
	Reply(ctx context.Context, message string) (string, error)

	// Reset clears the conversation history.
	Reset()

	// SessionID identifies the current conversation.
	SessionID() string
}
