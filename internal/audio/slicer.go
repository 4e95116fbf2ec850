package audio

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/timespec"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/tempfile"
)

// Slice decodes inputPath, applies the window and exports a WAV.
// The output file is reserved before decoding and released on every failure.
func (s *implSlicer) Slice(ctx context.Context, inputPath string, start, end timespec.Offset) Outcome {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	wav, err := tempfile.Create(s.tempDir, name+"_slice_*.wav")
	if err != nil {
		s.logger.Error(ctx, "Failed to reserve waveform file: %v", err)
		return Outcome{Failure: failure.ProcessingError}
	}

	keep := false
	defer func() {
		if keep {
			return
		}
		if err := wav.Release(); err != nil {
			s.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", wav.Path(), err)
		}
	}()

	s.logger.Info(ctx, "Loading audio from: %s", inputPath)
	asset, err := s.decoder.Decode(ctx, inputPath)
	if err != nil {
		kind := classifyDecodeError(err)
		s.logger.Error(ctx, "Decode failed (%s): %v", kind, err)
		return Outcome{Failure: kind}
	}

	duration := asset.DurationMillis()
	s.logger.Info(ctx, "Original duration: %.2fs", float64(duration)/1000)

	window, kind := ResolveWindow(start, end, duration)
	if kind != failure.None {
		s.logger.Warn(ctx, "Rejected trim window start=%s end=%s duration=%dms: %s", start, end, duration, kind)
		return Outcome{Failure: kind}
	}

	segment := asset
	if window.Full {
		s.logger.Info(ctx, "No trim requested or window covers the whole file, using full audio")
	} else {
		s.logger.Info(ctx, "Trimming audio from %.2fs to %.2fs", float64(window.Start)/1000, float64(window.End)/1000)
		segment = asset.Segment(window)
	}

	if segment.Frames() == 0 {
		s.logger.Warn(ctx, "Resulting segment has zero length")
		return Outcome{Failure: failure.ZeroLengthSlice}
	}

	if err := writeWAV(wav.Path(), segment); err != nil {
		s.logger.Error(ctx, "Failed to export waveform: %v", err)
		return Outcome{Failure: failure.ProcessingError}
	}

	s.logger.Info(ctx, "Waveform ready (%.2fs): %s", float64(segment.DurationMillis())/1000, wav.Path())
	keep = true
	return Outcome{Wav: wav}
}

func classifyDecodeError(err error) failure.Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return failure.FileNotFound
	case errors.Is(err, ErrDecode):
		return failure.DecodeError
	default:
		return failure.ProcessingError
	}
}
