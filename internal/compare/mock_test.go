package compare

import (
	"context"
)

type MockChatClient struct {
	Response string
	Err      error

	Calls      int
	LastSystem string
	LastUser   string
}

func (m *MockChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastUser = user
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
