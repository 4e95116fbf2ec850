package audio

import (
	"context"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/timespec"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/tempfile"
)

// Outcome is either a normalized waveform or exactly one failure
type Outcome struct {
	// Wav owns the exported file; the caller must Release it
	Wav     *tempfile.Guard
	Failure failure.Kind
}

func (o Outcome) OK() bool {
	return o.Failure == failure.None && o.Wav != nil
}

// Slicer trims an audio file to the requested bounds and normalizes it to WAV.
// Malformed offsets are reported as invalid start/end times.
type Slicer interface {
	Slice(ctx context.Context, inputPath string, start, end timespec.Offset) Outcome
}
