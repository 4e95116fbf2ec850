package processor

import (
	"github.com/nguyentantai21042004/audio-transcriber/internal/audio"
	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/document"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	slicer      audio.Slicer
	transcriber transcriber.Transcriber
	writer      document.Writer
	logger      logger.Logger
}

// New creates a new Processor instance. tr is nil when the model failed to
// load; every request is then answered with service_unavailable.
func New(cfg *config.Config, slicer audio.Slicer, tr transcriber.Transcriber, writer document.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		slicer:      slicer,
		transcriber: tr,
		writer:      writer,
		logger:      log,
	}
}

func (p *implProcessor) Available() bool {
	return p.transcriber != nil
}
