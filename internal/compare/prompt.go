package compare

import (
	"fmt"
)

// SystemPrompt frames the assistant's role for every comparison request.
const SystemPrompt = "You are a helpful AI document comparison assistant that returns JSON."

const promptTemplate = "You are an AI assistant that compares two documents and highlights their differences. " +
	"Your task is to return the full text of both documents, keeping the original text and structure intact as much as possible. " +
	"In the returned documents, highlight the specific word-level differences. " +
	"Wrap deleted text in Document 1 with `<del>` tags. " +
	"Wrap added text in Document 2 with `<ins>` tags. " +
	"For lines that are completely new or deleted, wrap the entire line. " +
	"For lines that have only minor changes, only wrap the changed words.\n\n" +
	"Also, provide a summary of the changes. " +
	"The entire output MUST be a single, valid JSON object with three keys: 'doc1_highlighted' (string), " +
	"'doc2_highlighted' (string), and 'summary' (JSON array of strings). " +
	"Each string in the 'summary' array should describe a single difference, including the line number where it occurred. " +
	"For example: [\"Difference at line 20: 'brown' in Document 1 was replaced with 'red' in Document 2.\"]. " +
	"Do not include any conversational text or formatting outside of the main JSON object.\n\n" +
	"--- Document 1 ---\n" +
	"%s\n" +
	"--- Document 2 ---\n" +
	"%s\n" +
	"--- End of Documents ---"

// BuildPrompt embeds both document texts verbatim between the section markers.
func BuildPrompt(doc1, doc2 string) string {
	return fmt.Sprintf(promptTemplate, doc1, doc2)
}
