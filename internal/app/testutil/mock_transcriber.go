package testutil

import (
	"context"
	"sync"

	"github.com/alephdao/transcribe-audio-to-text-extract/internal/app/api"
)

// MockTranscriber is a configurable implementation of api.Transcriber for
// testing the pipeline without network access.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount int
	Calls     []string
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, audioFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Calls = append(m.Calls, audioFilePath)

	if err, ok := m.ErrorMap[audioFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if response, ok := m.ResponseMap[audioFilePath]; ok {
		return response, nil
	}
	return m.DefaultResponse, nil
}

// WithDefaultResponse sets the default response text
func (m *MockTranscriber) WithDefaultResponse(response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultResponse = response
	return m
}

// WithDefaultError sets the default error to return
func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

// SetResponseForFile sets a specific response for a given file path
func (m *MockTranscriber) SetResponseForFile(filePath string, response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[filePath] = response
	return m
}

// SetErrorForFile sets a specific error for a given file path
func (m *MockTranscriber) SetErrorForFile(filePath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[filePath] = err
	return m
}

// WasCalledWith checks if the transcriber was called with a specific file path
func (m *MockTranscriber) WasCalledWith(filePath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, call := range m.Calls {
		if call == filePath {
			return true
		}
	}
	return false
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
