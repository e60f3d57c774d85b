package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/util/files"
)

var (
	speakerLabelPattern = regexp.MustCompile(`Speaker \d+:\s*`)
	wordPattern         = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)
	alphaWordPattern    = regexp.MustCompile(`^[A-Za-z]+$`)
	unsafeCharPattern   = regexp.MustCompile(`[^\w\s-]`)
	separatorRunPattern = regexp.MustCompile(`[-\s]+`)
)

// stopWords are common English function words skipped when picking
// description words for the filename.
var stopWords = map[string]bool{
	"the": true, "and": true, "are": true, "you": true, "for": true,
	"not": true, "with": true, "have": true, "this": true, "that": true,
	"was": true, "but": true, "they": true, "been": true, "their": true,
	"said": true, "each": true, "which": true, "she": true, "how": true,
	"will": true, "can": true, "what": true, "when": true, "where": true,
	"who": true, "why": true, "would": true, "could": true, "should": true,
	"about": true, "from": true, "into": true, "over": true, "after": true,
	"before": true, "during": true, "through": true, "above": true,
	"below": true, "between": true, "among": true,
}

const (
	previewLength        = 100
	maxDescriptionWords  = 4
	fallbackWordCount    = 3
	maxDescriptionLength = 50
	fallbackDescription  = "transcript"
)

// DescriptiveFilename derives a human-readable transcript filename from the
// transcript content, the original audio file name, and the synthesis time.
// Collisions are only avoided probabilistically by the second-resolution
// timestamp; that is an accepted limitation.
func DescriptiveFilename(transcript string, originalPath string, now time.Time) string {
	text := strings.TrimSpace(transcript)

	// Slice on runes so a multibyte character at the boundary is not split.
	preview := text
	if runes := []rune(preview); len(runes) > previewLength {
		preview = string(runes[:previewLength])
	}
	preview = strings.NewReplacer("\n", " ", "\r", " ").Replace(preview)
	preview = speakerLabelPattern.ReplaceAllString(preview, "")

	words := wordPattern.FindAllString(preview, -1)
	meaningful := lo.FilterMap(words, func(word string, _ int) (string, bool) {
		lower := strings.ToLower(word)
		return lower, !stopWords[lower]
	})

	var description string
	if len(meaningful) > 0 {
		if len(meaningful) > maxDescriptionWords {
			meaningful = meaningful[:maxDescriptionWords]
		}
		description = strings.Join(meaningful, "_")
	} else {
		// Fallback to the first few words of the whole transcript, keeping
		// only purely alphabetic tokens.
		fields := strings.Fields(text)
		if len(fields) > fallbackWordCount {
			fields = fields[:fallbackWordCount]
		}
		alphabetic := lo.FilterMap(fields, func(word string, _ int) (string, bool) {
			return strings.ToLower(word), alphaWordPattern.MatchString(word)
		})
		description = strings.Join(alphabetic, "_")
	}

	description = unsafeCharPattern.ReplaceAllString(description, "")
	description = separatorRunPattern.ReplaceAllString(description, "_")
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}
	if description == "" {
		description = fallbackDescription
	}

	timestamp := now.Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.md", description, files.Stem(originalPath), timestamp)
}
