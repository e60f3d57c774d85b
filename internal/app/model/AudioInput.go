package model

// AudioInput is the in-memory form of a validated audio file. It is built
// once before the API call and discarded afterwards.
type AudioInput struct {
	Path     string
	Data     []byte
	MIMEType string
}
