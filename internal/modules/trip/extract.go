// README: Brace-span JSON recovery from free-form model output.
package trip

import (
	"encoding/json"
	"log"
	"strings"
)

// ExtractJSON locates the widest brace-delimited span of text and returns it
// iff the span strictly parses as a JSON object. On absence or parse failure
// it logs and returns nil rather than failing: generated text may wrap JSON
// in prose or code fences, and the caller decides whether nil is fatal.
//
// If the text contains multiple independent objects only the widest span is
// attempted; nested objects inside it are part of the one parse.
func ExtractJSON(text string) json.RawMessage {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		log.Printf("extract: no JSON object in model output (%d bytes)", len(text))
		return nil
	}

	span := []byte(text[start : end+1])
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(span, &probe); err != nil {
		log.Printf("extract: span does not parse as JSON object: %v", err)
		return nil
	}
	return span
}
