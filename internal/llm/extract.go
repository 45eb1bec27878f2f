package llm

import (
	"bytes"
	"encoding/json"
)

// ExtractJSON pulls the JSON document out of a model reply. Models routed
// without structured outputs often wrap the object in a markdown fence or
// surround it with prose; the outermost {...} or [...] span is returned.
// Content with no recognizable JSON is returned trimmed and unchanged so the
// validator can report it.
func ExtractJSON(raw json.RawMessage) json.RawMessage {
	b := bytes.TrimSpace(raw)

	if bytes.HasPrefix(b, []byte("```")) {
		b = b[3:]
		// Drop the info string, e.g. ```json
		if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
			b = b[nl+1:]
		}
		if end := bytes.LastIndex(b, []byte("```")); end >= 0 {
			b = b[:end]
		}
		b = bytes.TrimSpace(b)
	}

	if json.Valid(b) {
		return json.RawMessage(b)
	}

	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := bytes.IndexByte(b, pair[0])
		end := bytes.LastIndexByte(b, pair[1])
		if start >= 0 && end > start && json.Valid(b[start:end+1]) {
			return json.RawMessage(b[start : end+1])
		}
	}
	return json.RawMessage(b)
}
