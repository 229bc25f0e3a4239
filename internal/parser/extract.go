// Package parser turns free-form LLM replies into study payloads.
//
// Parsing runs as a fixed pipeline of pure stages:
//
//  1. StripThinking drops a <think>...</think> reasoning block.
//  2. ExtractJSONObject takes the text between the first '{' and the last '}'.
//  3. The candidate is decoded and checked against a JSON Schema for the
//     expected shape.
//  4. The decoded value is mapped to domain types and clamped to the
//     requested count.
//
// Any failure in stages 2-3 produces a deterministic fallback marked as
// degraded. Stage 2 is a greedy scan, not a balanced-brace parser: a reply
// holding several JSON-like blocks, or prose with braces around the object,
// yields a candidate spanning all of them, which then fails to decode and
// falls back.
package parser

import "strings"

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// StripThinking removes the first <think>...</think> block from raw. Replies
// without a complete block are returned unchanged.
func StripThinking(raw string) string {
	start := strings.Index(raw, thinkOpen)
	if start == -1 {
		return raw
	}
	end := strings.Index(raw, thinkClose)
	if end == -1 || end < start {
		return raw
	}
	return strings.TrimSpace(raw[:start] + raw[end+len(thinkClose):])
}

// ExtractJSONObject returns the substring from the first '{' to the last '}'
// of text, inclusive. ok is false when no such span exists.
func ExtractJSONObject(text string) (candidate string, ok bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
