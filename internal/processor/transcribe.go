package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-transcriber/internal/transcriber"
)

// transcribe runs the shared model on the waveform. Blank output counts as a failure.
func (p *implProcessor) transcribe(ctx context.Context, wavPath string) (string, error) {
	language := p.cfg.Whisper.Language
	p.logger.Info(ctx, "Transcribing %s with %s (language %s)", wavPath, p.transcriber.Name(), language)

	text, err := p.transcriber.Transcribe(ctx, wavPath, language)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.transcriber.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return "", transcriber.ErrEmptyTranscript
	}
	return text, nil
}
