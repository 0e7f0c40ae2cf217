package visuals

import (
	"regexp"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	sentenceEnd    = regexp.MustCompile(`[.!?]+\s+`)
)

// SplitSegments splits story text into narration-aligned segments.
// kind is "paragraph" (blank-line separated) or "sentence". Empty
// segments are dropped; output order is text order.
func SplitSegments(text, kind string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parts []string
	if kind == "sentence" {
		parts = splitSentences(text)
	} else {
		parts = paragraphBreak.Split(text, -1)
	}

	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// splitSentences cuts after runs of sentence terminators. RE2 has no
// lookbehind, so the terminator run stays attached to its sentence by
// slicing at match ends.
func splitSentences(text string) []string {
	var parts []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		parts = append(parts, text[start:loc[1]])
		start = loc[1]
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}
