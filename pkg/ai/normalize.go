package ai

import (
	"encoding/json"
	"strings"
)

// rawDraft mirrors one suggestion item as the oracle returns it. Confidence
// is kept raw because models occasionally emit it as a string or omit it.
type rawDraft struct {
	OriginalText         string          `json:"originalText"`
	SuggestedTask        string          `json:"suggestedTask"`
	SuggestedDescription string          `json:"suggestedDescription"`
	ConfidenceScore      json.RawMessage `json:"confidenceScore"`
}

// Wrapper keys probed in priority order when the document is not a bare array.
var wrapperKeys = []string{"suggestions", "tasks", "items", "data"}

// decodeDrafts parses the oracle's message content, which is itself a JSON
// document, into normalized drafts. The document may be a bare array or an
// object wrapping the array under one of several conventional keys; any
// unrecognized shape yields an empty list.
func decodeDrafts(content, notes string) []Draft {
	content = stripCodeFences(content)

	var items []rawDraft
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		items = unwrapItems(content)
	}

	drafts := make([]Draft, 0, len(items))
	for _, item := range items {
		drafts = append(drafts, normalizeDraft(item, notes))
	}
	return drafts
}

func unwrapItems(content string) []rawDraft {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}
	for _, key := range wrapperKeys {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		var items []rawDraft
		if err := json.Unmarshal(raw, &items); err == nil {
			return items
		}
	}
	return nil
}

func normalizeDraft(item rawDraft, notes string) Draft {
	d := Draft{
		OriginalText:         strings.TrimSpace(item.OriginalText),
		SuggestedTask:        strings.TrimSpace(item.SuggestedTask),
		SuggestedDescription: strings.TrimSpace(item.SuggestedDescription),
		ConfidenceScore:      parseConfidence(item.ConfidenceScore),
	}
	if d.OriginalText == "" {
		d.OriginalText = truncate(notes, excerptLimit)
	}
	if d.SuggestedTask == "" {
		d.SuggestedTask = placeholderTask
	}
	return d
}

// parseConfidence clamps into [0, 1] and falls back to the default when the
// value is absent or not a number.
func parseConfidence(raw json.RawMessage) float64 {
	// A JSON null unmarshals into a float64 as a no-op, so it must be
	// treated as absent before decoding.
	if len(raw) == 0 || string(raw) == "null" {
		return defaultConfidence
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return defaultConfidence
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// stripCodeFences removes a surrounding markdown code block if the model
// ignored the no-markdown instruction.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	} else {
		return content
	}
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// truncate cuts to at most limit characters, never splitting a rune
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
