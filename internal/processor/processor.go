package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/timespec"
)

// Process orchestrates the entire upload pipeline. Every temporary file it
// creates is released before it returns, whatever the outcome.
func (p *implProcessor) Process(ctx context.Context, req Request) Result {
	startTime := time.Now()
	var res Result

	if p.transcriber == nil {
		p.logger.Error(ctx, "Rejecting upload: transcription service is not available")
		return res.fail(failure.ServiceUnavailable)
	}

	// Step 1: Check the upload itself
	if req.Upload == nil || req.Filename == "" {
		return res.fail(failure.UnselectedFile)
	}
	ext, ok := allowedExtension(req.Filename)
	if !ok {
		p.logger.Warn(ctx, "Rejected file with disallowed extension: %q", req.Filename)
		return res.fail(failure.DisallowedExtension)
	}
	res.OriginalFilename = secureFilename(req.Filename, ext)

	// Step 2: Stage the upload under a random name
	staged, err := p.stage(ctx, req.Upload, res.OriginalFilename)
	if err != nil {
		p.logger.Error(ctx, "Failed to stage upload %s: %v", res.OriginalFilename, err)
		return res.fail(failure.ProcessingError)
	}
	defer p.cleanupTempFile(ctx, staged)
	res.notice(failure.Info, fmt.Sprintf("Archivo '%s' subido. Validando tiempos...", res.OriginalFilename))

	// Step 3: Validate the requested bounds before touching the audio
	start, end := timespec.Parse(req.StartTime), timespec.Parse(req.EndTime)
	if kinds := validateTimes(start, end); len(kinds) > 0 {
		p.logger.Warn(ctx, "Rejected times start=%q end=%q", req.StartTime, req.EndTime)
		return res.fail(kinds...)
	}
	res.notice(failure.Info, "Tiempos validados. Procesando audio...")
	p.logger.Info(ctx, "Staged %s as %s, requested start=%s end=%s", res.OriginalFilename, staged.Path(), start, end)

	// Step 4: Slice and normalize. The temp dir check is deferred first so it
	// runs after the waveform has been released.
	defer p.cleanupTempDir(ctx)
	outcome := p.slicer.Slice(ctx, staged.Path(), start, end)
	if !outcome.OK() {
		return res.fail(outcome.Failure)
	}
	defer p.cleanupTempFile(ctx, outcome.Wav)

	// Step 5: Transcribe
	text, err := p.transcribe(ctx, outcome.Wav.Path())
	if err != nil {
		p.logger.Error(ctx, "Transcription failed for %s: %v", res.OriginalFilename, err)
		return res.fail(failure.TranscriptionUnavailable)
	}
	res.Transcript = text
	res.notice(failure.Success, "Transcripción completada!")

	// Step 6: Export the document
	res.DocumentName = p.export(ctx, res.OriginalFilename, text)

	p.logger.Info(ctx, "Processing completed for %s in %s (document: %s)", res.OriginalFilename, time.Since(startTime), res.DocumentName)
	return res
}

// validateTimes reports malformed fields, then an inverted range when both are set
func validateTimes(start, end timespec.Offset) []failure.Kind {
	var kinds []failure.Kind
	if start.IsMalformed() {
		kinds = append(kinds, failure.MalformedStartTime)
	}
	if end.IsMalformed() {
		kinds = append(kinds, failure.MalformedEndTime)
	}
	if start.IsSet() && end.IsSet() && start.Millis >= end.Millis {
		kinds = append(kinds, failure.StartAfterEnd)
	}
	return kinds
}
