//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"os"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/api"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/api/gemini"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/converter"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/config"
)

// provideTranscriber builds the Gemini-backed transcriber from configuration.
func provideTranscriber(ctx context.Context, cfg *config.Config, logger *zap.Logger) (api.Transcriber, error) {
	return gemini.NewRemoteTranscriber(ctx, cfg.APIKey, cfg.ModelID, logger)
}

// provideProgressManager enables the spinner only when attached to a terminal.
func provideProgressManager() *converter.ProgressManager {
	return converter.NewProgressManager(converter.ProgressConfig{
		Enabled: converter.ShouldShowProgress(false),
		Writer:  os.Stderr,
	})
}

func InitializeConverter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*converter.Converter, error) {
	wire.Build(converter.NewConverter, provideTranscriber, provideProgressManager)
	return nil, nil
}
