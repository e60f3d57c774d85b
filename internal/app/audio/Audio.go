package audio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/model"
)

// extensionToMIME maps recognized audio extensions to the MIME type sent to
// the Gemini API. Trust is extension-based only, no content sniffing.
var extensionToMIME = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".webm": "audio/webm",
}

// defaultMIMEType is used for extensions that passed validation but have no
// table entry.
const defaultMIMEType = "audio/mp4"

// IsAudioFile reports whether the file extension maps to a known audio type.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extensionToMIME[ext]
	return ok
}

// MIMEType returns the MIME type for the file's extension, falling back to
// audio/mp4 for unknown extensions.
func MIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType, ok := extensionToMIME[ext]; ok {
		return mimeType
	}
	return defaultMIMEType
}

// SupportedExtensions returns the recognized audio extensions, sorted.
func SupportedExtensions() []string {
	extensions := make([]string, 0, len(extensionToMIME))
	for ext := range extensionToMIME {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

// Validate checks that the path exists and carries a recognized audio
// extension. It must pass before any network activity.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.Wrapf(apperrors.ErrFileNotFound, "%s", path)
		}
		return apperrors.Wrapf(apperrors.ErrFileNotFound, "%s: %v", path, err)
	}

	if !IsAudioFile(path) {
		return apperrors.Wrapf(apperrors.ErrUnsupportedFormat,
			"%s (supported: %s)", path, strings.Join(SupportedExtensions(), ", "))
	}

	return nil
}

// Read validates the file and loads it whole into memory with its MIME type.
func Read(path string) (*model.AudioInput, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrFileNotFound, "read %s: %v", path, err)
	}

	return &model.AudioInput{
		Path:     path,
		Data:     data,
		MIMEType: MIMEType(path),
	}, nil
}
