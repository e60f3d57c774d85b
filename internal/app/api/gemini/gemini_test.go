package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name        string
		selector    string
		want        string
		expectError bool
	}{
		{"fast", "fast", "models/gemini-2.0-flash-exp", false},
		{"high_quality", "high-quality", "models/gemini-2.5-pro-exp-03-25", false},
		{"unknown", "turbo", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveModel(tt.selector)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractTranscript_Text(t *testing.T) {
	resp := textResponse("Hello world.")

	got, err := extractTranscript(resp, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", got)
}

func TestExtractTranscript_NoCandidatesIsBlocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{}

	_, err := extractTranscript(resp, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscriptionBlocked))
}

func TestExtractTranscript_NilContentIsBlocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	_, err := extractTranscript(resp, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscriptionBlocked))
}

func TestExtractTranscript_EmptyPartsIsBlocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{}}},
		},
	}

	_, err := extractTranscript(resp, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscriptionBlocked))
}

func TestExtractTranscript_BlockedWithSafetyRatings(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				SafetyRatings: []*genai.SafetyRating{
					{Category: genai.HarmCategoryHateSpeech, Probability: genai.HarmProbabilityHigh},
				},
			},
		},
	}

	_, err := extractTranscript(resp, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscriptionBlocked))
}

func TestExtractTranscript_NonTextPartsFailExtraction(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "audio/mpeg"}},
				}},
			},
		},
	}

	_, err := extractTranscript(resp, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExtraction))
}

func TestGenerateConfig_RelaxedSafetyThresholds(t *testing.T) {
	cfg := generateConfig()

	require.Len(t, cfg.SafetySettings, 3)

	categories := make(map[genai.HarmCategory]genai.HarmBlockThreshold)
	for _, setting := range cfg.SafetySettings {
		categories[setting.Category] = setting.Threshold
	}

	assert.Equal(t, genai.HarmBlockThresholdBlockOnlyHigh, categories[genai.HarmCategoryHateSpeech])
	assert.Equal(t, genai.HarmBlockThresholdBlockOnlyHigh, categories[genai.HarmCategoryHarassment])
	assert.Equal(t, genai.HarmBlockThresholdBlockOnlyHigh, categories[genai.HarmCategorySexuallyExplicit])
}

func TestTranscriptionPromptAsksForSpeakerLabels(t *testing.T) {
	assert.Contains(t, transcriptionPrompt, "Speaker 1:")
	assert.Contains(t, transcriptionPrompt, "original language")
}
