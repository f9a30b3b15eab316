package compare

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestReadDocument(t *testing.T) {
	text := ReadDocument(bytes.NewReader([]byte("plain ascii text")))
	assert.Equal(t, "plain ascii text", text)
}

func TestReadDocumentInvalidUTF8(t *testing.T) {
	// 0xff and a truncated multi-byte sequence are not valid UTF-8.
	data := []byte("hel\xfflo \xe2\x28world")

	text := ReadDocument(bytes.NewReader(data))

	assert.True(t, utf8.ValidString(text))
	assert.Contains(t, text, "hel")
	assert.Contains(t, text, "world")
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestReadDocumentReadError(t *testing.T) {
	text := ReadDocument(failingReader{})
	assert.Equal(t, "Could not read file content.", text)
}
