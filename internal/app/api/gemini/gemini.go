package gemini

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/audio"
	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
)

// ModelOptions maps the CLI model selectors to the externally named Gemini
// model identifiers.
var ModelOptions = map[string]string{
	"fast":         "models/gemini-2.0-flash-exp",
	"high-quality": "models/gemini-2.5-pro-exp-03-25",
}

// DefaultModel is the selector used when no --model flag is given.
const DefaultModel = "fast"

// transcriptionPrompt is the fixed instruction sent with every audio upload.
const transcriptionPrompt = `Transcribe this audio exactly in its original language. Keep length. Add paragraph spacing. Remove filler. Fix typos.

If there are multiple speakers, identify and label them as 'Speaker 1:', 'Speaker 2:', etc.

Do not include any headers, titles, or additional text - only the transcription itself. NO MARKDOWN FORMATTING!!!

When transcribing, add line breaks between different paragraphs or distinct segments of speech to improve readability.`

// ResolveModel maps a CLI selector to its Gemini model identifier.
func ResolveModel(selector string) (string, error) {
	modelID, ok := ModelOptions[selector]
	if !ok {
		return "", apperrors.Newf("unknown model %q, must be one of: fast, high-quality", selector)
	}
	return modelID, nil
}

// RemoteTranscriber implements remote transcription using the Gemini API.
type RemoteTranscriber struct {
	client  *genai.Client
	modelID string
	logger  *zap.Logger
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(ctx context.Context, apiKey string, modelID string, logger *zap.Logger) (*RemoteTranscriber, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to create Gemini client")
	}

	return &RemoteTranscriber{
		client:  client,
		modelID: modelID,
		logger:  logger,
	}, nil
}

// Transcript uploads the audio inline and returns the generated transcript.
// Single attempt only: no retry and no timeout beyond the transport default,
// which is the stated policy for a single-shot tool.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, audioFilePath string) (string, error) {
	input, err := audio.Read(audioFilePath)
	if err != nil {
		return "", err
	}

	rt.logger.Info("sending audio for transcription",
		zap.String("file", input.Path),
		zap.Int("bytes", len(input.Data)),
		zap.String("mimeType", input.MIMEType),
		zap.String("model", rt.modelID))

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(input.Data, input.MIMEType),
		}, genai.RoleUser),
	}

	resp, err := rt.client.Models.GenerateContent(ctx, rt.modelID, contents, generateConfig())
	if err != nil {
		return "", apperrors.Wrapf(err, "generateContent failed")
	}

	return extractTranscript(resp, rt.logger)
}

// generateConfig returns the content-safety policy: only block high-confidence
// hate speech, harassment and sexually explicit content instead of the
// stricter default thresholds.
func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		},
	}
}

// extractTranscript pulls the transcript text out of the API response.
// A response with no candidate or an empty candidate content is treated as
// blocked; any safety diagnostics are logged before failing.
func extractTranscript(resp *genai.GenerateContentResponse, logger *zap.Logger) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		logSafetyDiagnostics(resp, logger)
		return "", apperrors.Wrap(apperrors.ErrTranscriptionBlocked,
			"transcription was blocked due to content restrictions or the audio format is not supported")
	}

	if text := resp.Text(); text != "" {
		return text, nil
	}

	// Fallback: scan the candidate parts for the first non-empty text field.
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text, nil
		}
	}

	return "", apperrors.Wrap(apperrors.ErrExtraction, "no text part in response")
}

func logSafetyDiagnostics(resp *genai.GenerateContentResponse, logger *zap.Logger) {
	logger.Warn("response was blocked or empty, checking safety ratings")

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		logger.Warn("prompt feedback",
			zap.String("blockReason", string(resp.PromptFeedback.BlockReason)))
	}

	if len(resp.Candidates) == 0 {
		return
	}
	for _, rating := range resp.Candidates[0].SafetyRatings {
		if rating == nil {
			continue
		}
		logger.Warn("safety rating",
			zap.String("category", string(rating.Category)),
			zap.String("probability", string(rating.Probability)))
	}
}
