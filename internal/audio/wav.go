package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// writeWAV encodes a as 16-bit PCM WAV at path, replacing any existing content
func writeWAV(path string, a *Asset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	enc := wav.NewEncoder(f, a.SampleRate(), bitDepth, a.channels(), wavFormatPCM)
	if err := enc.Write(a.buf); err != nil {
		f.Close()
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}

	return f.Close()
}
