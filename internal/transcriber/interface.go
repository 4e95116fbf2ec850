package transcriber

import (
	"context"
	"errors"
)

var (
	// ErrAudioMissing is returned before calling the model when the waveform does not exist
	ErrAudioMissing = errors.New("audio file does not exist")
	// ErrEmptyTranscript is returned when the model produced no text
	ErrEmptyTranscript = errors.New("model returned an empty transcript")
)

// Transcriber turns a waveform into text. Implementations are built once per
// process and are safe for concurrent use.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath, language string) (string, error)
	Name() string
}
