// Package llmjson pulls structured payloads out of free-text model output.
// Models are prompted to answer with bare JSON but routinely wrap it in prose
// or markdown fences, so callers scan for the first object and fall back to a
// fixed value when nothing parses.
package llmjson

import "encoding/json"

// FirstObject returns the first balanced brace-delimited substring of text.
// The scan tracks brace depth and skips braces inside JSON strings, so nested
// objects come back whole. ok is false when text holds no balanced object.
func FirstObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", false
}

// Unmarshal extracts the first JSON object from text and decodes it into v,
// reporting whether an object was found and decoded. Callers should treat a
// false return as "use the fallback value" and discard v.
func Unmarshal(text string, v interface{}) bool {
	raw, found := FirstObject(text)
	if !found {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}
