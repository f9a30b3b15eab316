package llm

import (
	"context"
)

// ChatClient issues a single two-message (system + user) chat completion and
// returns the raw text of the first choice. Implementations always request
// deterministic sampling (temperature 0).
type ChatClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
