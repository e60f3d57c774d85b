package transcript

import (
	"fmt"
	"strings"
)

// boilerplatePrefixes are preambles the model sometimes prepends despite the
// prompt asking for the transcription only.
var boilerplatePrefixes = []string{
	"# Transcription\n\n",
	"Okay, here is the transcription:\n",
	"Here's the transcription:\n",
}

const maxSpeakers = 9

// Normalize cleans raw model output: it strips known boilerplate preambles,
// trims whitespace, and removes speaker labels when the transcript contains
// exactly one speaker. Multi-speaker transcripts keep their labels to
// preserve turn structure. Normalize is idempotent.
func Normalize(raw string) string {
	text := raw
	for _, prefix := range boilerplatePrefixes {
		text = strings.TrimPrefix(text, prefix)
	}
	text = strings.TrimSpace(text)

	if len(detectSpeakers(text)) == 1 {
		text = strings.ReplaceAll(text, "**Speaker 1:**", "")
		text = strings.ReplaceAll(text, "Speaker 1:", "")
		text = strings.TrimSpace(text)
	}

	return text
}

// detectSpeakers collects the distinct speaker numbers labeled in the text,
// matching the literal forms "Speaker N:" and "**Speaker N:**".
func detectSpeakers(text string) map[int]bool {
	speakers := make(map[int]bool)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Speaker ") && !strings.HasPrefix(trimmed, "**Speaker ") {
			continue
		}
		for n := 1; n <= maxSpeakers; n++ {
			if strings.Contains(line, fmt.Sprintf("Speaker %d:", n)) ||
				strings.Contains(line, fmt.Sprintf("**Speaker %d:**", n)) {
				speakers[n] = true
			}
		}
	}
	return speakers
}
