package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alephdao/transcribe-audio-to-text-extract/cmd/a2t/cmd/version"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/api/gemini"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/audio"
	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/logger"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/config"
)

var (
	modelName string
	outputDir string
	verbose   bool
)

const previewLength = 200

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t <audio_file>",
	Short: "Transcribe an audio file to Markdown using Google AI Gemini",
	Long: `Transcribe a single audio file to text using the Gemini API and save the
result as a Markdown document with a content-derived filename.

- Supported formats: mp3, wav, ogg, m4a, mp4, aac, webm
- Requires GEMINI_API_KEY in the environment or a .env file`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(version.Cmd)

	rootCmd.Flags().StringVarP(&modelName, "model", "m", gemini.DefaultModel,
		"AI model to use: fast or high-quality")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "transcripts",
		"output directory for transcripts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func run(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	modelID, err := gemini.ResolveModel(modelName)
	if err != nil {
		return err
	}

	// Credential check comes first, before any file or network I/O.
	cfg, err := config.InitializeConfig(modelID, outputDir, verbose)
	if err != nil {
		return err
	}

	log := logger.MustNewLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	fmt.Println("🎙️  Audio Transcription Tool")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📁 Input file: %s\n", audioPath)
	fmt.Printf("🤖 Model: %s\n", cfg.ModelID)
	fmt.Printf("📂 Output directory: %s\n", cfg.OutputDir)
	fmt.Println()

	// Pre-flight checks for fast feedback; the pipeline re-validates.
	if _, err := os.Stat(audioPath); err != nil {
		return apperrors.Wrapf(apperrors.ErrFileNotFound, "%s", audioPath)
	}
	if !audio.IsAudioFile(audioPath) {
		return apperrors.Wrapf(apperrors.ErrUnsupportedFormat,
			"supported formats: %s", strings.Join(audio.SupportedExtensions(), ", "))
	}

	fmt.Println("🔄 Transcribing audio (this may take a while)...")

	ctx := context.Background()
	conv, err := app.InitializeConverter(ctx, cfg, log)
	if err != nil {
		log.Error("converter initialization failed", zap.Error(err))
		return err
	}
	defer conv.Close()

	result, err := conv.Do(ctx, audioPath, cfg.OutputDir)
	if err != nil {
		log.Error("transcription failed", zap.Error(err))
		return err
	}

	fmt.Println("✅ Transcription completed successfully!")
	fmt.Printf("📄 Transcript saved to: %s\n", result.OutputFile)

	preview := truncatePreview(result.Transcript, previewLength)
	fmt.Printf("\n📝 Preview (first %d characters):\n", previewLength)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(preview)
	fmt.Println(strings.Repeat("-", 50))

	return nil
}

// truncatePreview shortens text to at most limit characters, slicing on
// runes so a multibyte character at the boundary is not split.
func truncatePreview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
