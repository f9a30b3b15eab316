package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	mock := &MockChatClient{Response: wellFormed}
	comparer := NewComparer(mock)

	result, err := comparer.Compare(context.Background(), "The quick brown fox", "The quick red fox")

	require.NoError(t, err)
	assert.Equal(t, "The quick <del>brown</del> fox", result.Doc1Highlighted)
	assert.Equal(t, "The quick <ins>red</ins> fox", result.Doc2Highlighted)

	assert.Equal(t, 1, mock.Calls)
	assert.Equal(t, SystemPrompt, mock.LastSystem)
	assert.Contains(t, mock.LastUser, "--- Document 1 ---\nThe quick brown fox\n")
	assert.Contains(t, mock.LastUser, "--- Document 2 ---\nThe quick red fox\n")
}

func TestCompareFencedResponse(t *testing.T) {
	mock := &MockChatClient{Response: "```json\n" + wellFormed + "\n```"}
	comparer := NewComparer(mock)

	result, err := comparer.Compare(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.Equal(t, "The quick <ins>red</ins> fox", result.Doc2Highlighted)
}

func TestCompareUpstreamError(t *testing.T) {
	upstream := errors.New("connection refused")
	mock := &MockChatClient{Err: upstream}
	comparer := NewComparer(mock)

	result, err := comparer.Compare(context.Background(), "a", "b")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrInvalidFormat)
}

func TestCompareInvalidResponse(t *testing.T) {
	mock := &MockChatClient{Response: "Sure! Here are the differences I found:"}
	comparer := NewComparer(mock)

	result, err := comparer.Compare(context.Background(), "a", "b")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, 1, mock.Calls)
}
