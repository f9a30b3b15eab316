package compare

import (
	"io"
	"strings"
)

const unreadablePlaceholder = "Could not read file content."

// ReadDocument consumes an uploaded file as UTF-8 text. Invalid byte
// sequences are dropped rather than failing the request; a read error yields
// a fixed placeholder so the comparison still has something to say about the
// file.
func ReadDocument(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return unreadablePlaceholder
	}
	return strings.ToValidUTF8(string(data), "")
}
