package processor

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/audio-transcriber/internal/document"
)

// export writes the transcript document into the output folder and returns
// its filename, or "" when writing failed
func (p *implProcessor) export(ctx context.Context, originalFilename, text string) string {
	name := document.OutputName(originalFilename, p.writer.Ext())
	outputPath := filepath.Join(p.cfg.Paths.Output, name)

	if err := p.writer.Write(originalFilename, text, outputPath); err != nil {
		p.logger.Error(ctx, "Failed to save document %s: %v", outputPath, err)
		return ""
	}

	p.logger.Info(ctx, "Transcript saved: %s", outputPath)
	return name
}
