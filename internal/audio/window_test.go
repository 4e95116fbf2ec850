package audio

import (
	"testing"

	"github.com/nguyentantai21042004/audio-transcriber/internal/failure"
	"github.com/nguyentantai21042004/audio-transcriber/internal/timespec"
)

func TestResolveWindow(t *testing.T) {
	const d = int64(10000)
	malformed := timespec.Offset{Kind: timespec.Malformed}

	tests := []struct {
		name     string
		duration int64
		start    timespec.Offset
		end      timespec.Offset
		want     Window
		wantKind failure.Kind
	}{
		{"no bounds", d, timespec.None(), timespec.None(), Window{0, d, true}, failure.None},
		{"start only", d, timespec.At(2000), timespec.None(), Window{2000, d, false}, failure.None},
		{"end only", d, timespec.None(), timespec.At(5000), Window{0, 5000, false}, failure.None},
		{"both", d, timespec.At(2000), timespec.At(5000), Window{2000, 5000, false}, failure.None},
		{"end clamped to full", d, timespec.At(0), timespec.At(d + 5000), Window{0, d, true}, failure.None},
		{"end clamped with start", d, timespec.At(3000), timespec.At(d + 1), Window{3000, d, false}, failure.None},
		{"end exactly duration", d, timespec.None(), timespec.At(d), Window{0, d, true}, failure.None},
		{"start at duration", d, timespec.At(d), timespec.None(), Window{}, failure.StartTimeOutOfBounds},
		{"start past duration", d, timespec.At(d + 1000), timespec.At(d + 2000), Window{}, failure.StartTimeOutOfBounds},
		{"negative start", d, timespec.At(-1), timespec.None(), Window{}, failure.InvalidStartTime},
		{"zero end", d, timespec.None(), timespec.At(0), Window{}, failure.InvalidEndTime},
		{"negative end", d, timespec.None(), timespec.At(-5), Window{}, failure.InvalidEndTime},
		{"end before start", d, timespec.At(1000), timespec.At(500), Window{}, failure.EndTimeBeforeStartTime},
		{"end equals start", d, timespec.At(1000), timespec.At(1000), Window{}, failure.EndTimeBeforeStartTime},
		{"malformed start", d, malformed, timespec.None(), Window{}, failure.InvalidStartTime},
		{"malformed end", d, timespec.None(), malformed, Window{}, failure.InvalidEndTime},
		{"empty asset", 0, timespec.None(), timespec.None(), Window{0, 0, true}, failure.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := ResolveWindow(tt.start, tt.end, tt.duration)
			if kind != tt.wantKind {
				t.Fatalf("ResolveWindow() kind = %v, want %v", kind, tt.wantKind)
			}
			if got != tt.want {
				t.Errorf("ResolveWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveWindowInvariant(t *testing.T) {
	const d = int64(7300)
	offsets := []timespec.Offset{timespec.None()}
	for ms := int64(-1000); ms <= d+3000; ms += 700 {
		offsets = append(offsets, timespec.At(ms))
	}

	for _, start := range offsets {
		for _, end := range offsets {
			w, kind := ResolveWindow(start, end, d)
			if kind != failure.None {
				continue
			}
			if w.Start < 0 || w.End > d || w.Start >= w.End {
				t.Errorf("ResolveWindow(%v, %v) = %+v breaks 0 <= start < end <= %d", start, end, w, d)
			}
		}
	}
}
