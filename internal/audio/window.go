package audio

import (
	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/timespec"
)

// Window is the part of an asset to keep, in milliseconds
type Window struct {
	Start int64
	End   int64
	// Full is set when the window spans the whole asset and no trim is needed
	Full bool
}

func (w Window) DurationMillis() int64 {
	return w.End - w.Start
}

// ResolveWindow validates the requested bounds against durationMs.
// Unspecified bounds default to the asset edges. An end past the asset is
// clamped, while a start at or past it is rejected.
func ResolveWindow(start, end timespec.Offset, durationMs int64) (Window, failure.Kind) {
	var from int64
	switch start.Kind {
	case timespec.Unspecified:
	case timespec.Concrete:
		if start.Millis < 0 {
			return Window{}, failure.InvalidStartTime
		}
		if start.Millis >= durationMs {
			return Window{}, failure.StartTimeOutOfBounds
		}
		from = start.Millis
	default:
		return Window{}, failure.InvalidStartTime
	}

	to := durationMs
	switch end.Kind {
	case timespec.Unspecified:
	case timespec.Concrete:
		if end.Millis <= 0 {
			return Window{}, failure.InvalidEndTime
		}
		if end.Millis <= from {
			return Window{}, failure.EndTimeBeforeStartTime
		}
		to = min(end.Millis, durationMs)
	default:
		return Window{}, failure.InvalidEndTime
	}

	if from == 0 && to == durationMs {
		return Window{Start: 0, End: durationMs, Full: true}, failure.None
	}
	if from >= to {
		return Window{}, failure.InvalidInterval
	}

	return Window{Start: from, End: to}, failure.None
}
