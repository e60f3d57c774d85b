package converter

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/api"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/audio"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/report"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/transcript"
)

// Converter runs the transcription pipeline for a single audio file:
// validate, transcribe remotely, normalize, and persist the Markdown report.
type Converter struct {
	transcriber api.Transcriber
	logger      *zap.Logger
	progress    *ProgressManager
}

// Result of one completed run.
type Result struct {
	OutputFile string
	Transcript string
}

func NewConverter(transcriber api.Transcriber, logger *zap.Logger, progress *ProgressManager) *Converter {
	return &Converter{
		transcriber: transcriber,
		logger:      logger,
		progress:    progress,
	}
}

func (c *Converter) Close() error {
	if c.progress != nil {
		c.progress.Shutdown()
	}
	return nil
}

// Do runs the full pipeline to completion. Every stage fails fast; the first
// error aborts the run and no output file is left behind.
func (c *Converter) Do(ctx context.Context, audioPath string, outputDir string) (*Result, error) {
	if err := audio.Validate(audioPath); err != nil {
		return nil, err
	}

	spinner := c.startSpinner("Transcribing audio")
	raw, err := c.transcriber.Transcript(ctx, audioPath)
	spinner.Complete()
	if err != nil {
		return nil, err
	}

	cleaned := transcript.Normalize(raw)
	c.logger.Debug("normalized transcript",
		zap.Int("rawChars", len(raw)),
		zap.Int("chars", len(cleaned)))

	outputFile, err := report.Save(cleaned, audioPath, outputDir, time.Now())
	if err != nil {
		return nil, err
	}

	c.logger.Info("transcript saved", zap.String("file", outputFile))
	return &Result{OutputFile: outputFile, Transcript: cleaned}, nil
}

func (c *Converter) startSpinner(description string) *Spinner {
	if c.progress == nil {
		return &Spinner{enabled: false}
	}
	return c.progress.StartSpinner(description)
}
