package compare

import (
	"context"
	"fmt"
	"log"

	"github.com/agenthands/docdiff/internal/llm"
)

// Comparer performs one document comparison per call: build the prompt, make
// exactly one upstream chat completion, decode the response. It holds no
// mutable state and is safe to share across requests.
type Comparer struct {
	llm llm.ChatClient
}

func NewComparer(client llm.ChatClient) *Comparer {
	return &Comparer{llm: client}
}

// Compare sends both documents upstream and returns the decoded result.
// Nothing is retried; a malformed response wraps ErrInvalidFormat and the raw
// text is logged for diagnosis.
func (c *Comparer) Compare(ctx context.Context, doc1, doc2 string) (*Result, error) {
	prompt := BuildPrompt(doc1, doc2)

	raw, err := c.llm.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		log.Printf("--- INVALID JSON RESPONSE ---\n%s\n-----------------------------", raw)
		return nil, err
	}

	return result, nil
}
