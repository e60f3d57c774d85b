package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alephdao/transcribe-audio-to-text-extract/internal/app/errors"
)

func TestMIMEType(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"mp3", "audio.mp3", "audio/mpeg"},
		{"wav", "audio.wav", "audio/wav"},
		{"ogg", "audio.ogg", "audio/ogg"},
		{"m4a", "audio.m4a", "audio/mp4"},
		{"mp4", "audio.mp4", "audio/mp4"},
		{"aac", "audio.aac", "audio/aac"},
		{"webm", "audio.webm", "audio/webm"},
		{"uppercase_extension", "AUDIO.MP3", "audio/mpeg"},
		{"unknown_extension_falls_back", "audio.flac", "audio/mp4"},
		{"no_extension_falls_back", "audio", "audio/mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MIMEType(tt.path))
		})
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"recording.mp3", true},
		{"recording.WAV", true},
		{"nested/dir/voice.m4a", true},
		{"recording.flac", false},
		{"recording.txt", false},
		{"recording", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudioFile(tt.path))
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	extensions := SupportedExtensions()

	assert.Len(t, extensions, 7)
	assert.Contains(t, extensions, ".mp3")
	assert.Contains(t, extensions, ".webm")
	assert.IsIncreasing(t, extensions)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	audioFile := filepath.Join(dir, "voice.mp3")
	require.NoError(t, os.WriteFile(audioFile, []byte("not really audio"), 0o644))

	textFile := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("hello"), 0o644))

	t.Run("valid_audio_file", func(t *testing.T) {
		assert.NoError(t, Validate(audioFile))
	})

	t.Run("missing_file", func(t *testing.T) {
		err := Validate(filepath.Join(dir, "missing.mp3"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrFileNotFound))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		err := Validate(textFile)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
		assert.Contains(t, err.Error(), ".mp3")
	})
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	audioFile := filepath.Join(dir, "voice.m4a")
	payload := []byte{0x00, 0x01, 0x02, 0x03}
	require.NoError(t, os.WriteFile(audioFile, payload, 0o644))

	input, err := Read(audioFile)
	require.NoError(t, err)

	assert.Equal(t, audioFile, input.Path)
	assert.Equal(t, payload, input.Data)
	assert.Equal(t, "audio/mp4", input.MIMEType)
}

func TestRead_RejectsBeforeReading(t *testing.T) {
	input, err := Read("missing.mp3")
	require.Error(t, err)
	assert.Nil(t, input)
	assert.True(t, errors.Is(err, apperrors.ErrFileNotFound))
}
