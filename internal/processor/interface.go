package processor

import (
	"context"
	"io"
)

// Processor runs one upload through staging, time validation, slicing,
// transcription and export
type Processor interface {
	// Process never panics or returns an error; failures are reported in Result
	Process(ctx context.Context, req Request) Result
	// ProcessFile transcribes a whole file from the inbox folder
	ProcessFile(ctx context.Context, path string) error
	// Available reports whether the transcription model loaded
	Available() bool
}

// Request is one form submission
type Request struct {
	// Filename as sent by the client; empty when no file was chosen
	Filename string
	Upload   io.Reader
	// StartTime and EndTime are the raw HH:MM:SS fields, possibly blank
	StartTime string
	EndTime   string
}
