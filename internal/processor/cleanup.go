package processor

import (
	"context"

	"github.com/nguyentantai21042004/audio-transcriber/pkg/tempfile"
)

// cleanupTempFile releases a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, g *tempfile.Guard) {
	if err := g.Release(); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", g.Path(), err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", g.Path())
	}
}

// cleanupTempDir removes the waveform folder once no request is using it
func (p *implProcessor) cleanupTempDir(ctx context.Context) {
	dir := p.cfg.TempWavPath()
	if err := tempfile.RemoveDirIfEmpty(dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove temp folder %s: %v", dir, err)
	}
}
