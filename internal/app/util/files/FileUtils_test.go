package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, EnsureDirectory(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent for an existing directory.
	assert.NoError(t, EnsureDirectory(nested))
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/meeting.mp3", "meeting"},
		{"voice.m4a", "voice"},
		{"archive/interview.final.mp3", "interview.final"},
		{"noextension", "noextension"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 1234), 0o644))

	size, err := FileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), size)

	_, err = FileSize(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestReadOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(path, []byte("  content here \n"), 0o644))

	content, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content here", content)
}
