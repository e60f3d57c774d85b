package report

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/model"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/transcript"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/util/files"
)

// documentTemplate is the fixed report layout. The two trailing spaces on the
// metadata lines are Markdown hard line breaks; the template is concatenated
// so that editors cannot strip them.
const documentTemplate = "# Audio Transcript\n" +
	"\n" +
	"**Source File:** {{.SourceFile}}  \n" +
	"**Transcribed:** {{.TranscribedAt.Format \"2006-01-02 15:04:05\"}}  \n" +
	"**File Size:** {{printf \"%.2f\" .FileSizeMiB}} MB\n" +
	"\n" +
	"---\n" +
	"\n" +
	"{{.Body}}\n" +
	"\n" +
	"---\n" +
	"\n" +
	"*Transcribed using Google AI Gemini*\n"

var tmpl = template.Must(template.New("report").Parse(documentTemplate))

// Render produces the Markdown text for a report document.
func Render(doc model.ReportDocument) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, doc); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrWrite, "render report: %v", err)
	}
	return sb.String(), nil
}

// Save renders the transcript report and writes it under outputDir with a
// content-derived filename, creating the directory if needed. It returns the
// written file path. Nothing is written when any earlier step fails.
func Save(transcriptText string, audioPath string, outputDir string, now time.Time) (string, error) {
	if err := files.EnsureDirectory(outputDir); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrWrite, "create output directory %s: %v", outputDir, err)
	}

	size, err := files.FileSize(audioPath)
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrWrite, "stat %s: %v", audioPath, err)
	}

	content, err := Render(model.ReportDocument{
		SourceFile:    filepath.Base(audioPath),
		TranscribedAt: now,
		FileSizeBytes: size,
		Body:          transcriptText,
	})
	if err != nil {
		return "", err
	}

	outputFile := filepath.Join(outputDir, transcript.DescriptiveFilename(transcriptText, audioPath, now))
	if err := os.WriteFile(outputFile, []byte(content), 0o644); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrWrite, "write %s: %v", outputFile, err)
	}

	return outputFile, nil
}
