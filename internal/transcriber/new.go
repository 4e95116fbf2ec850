package transcriber

import (
	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/executor"
)

// New builds the backend selected in cfg. An error means the model could not
// be loaded and transcription must be disabled.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendGemini:
		return NewGemini(cfg.Gemini, log)
	default:
		return NewWhisperCPP(cfg.Whisper, exec, log)
	}
}
