package compare

// Result is the JSON object the model is instructed to return: the full text
// of both documents with <del>/<ins> markup, plus per-difference summary
// lines. Field contents are passed through to the page as-is; nothing beyond
// the JSON decode validates them.
type Result struct {
	Doc1Highlighted string   `json:"doc1_highlighted"`
	Doc2Highlighted string   `json:"doc2_highlighted"`
	Summary         []string `json:"summary"`
}
