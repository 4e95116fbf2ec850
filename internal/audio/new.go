package audio

import (
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
)

type implSlicer struct {
	decoder Decoder
	tempDir string
	logger  logger.Logger
}

// NewSlicer creates a Slicer writing waveforms into tempDir
func NewSlicer(dec Decoder, tempDir string, log logger.Logger) Slicer {
	return &implSlicer{
		decoder: dec,
		tempDir: tempDir,
		logger:  log,
	}
}
