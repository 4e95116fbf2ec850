package audio

import (
	"github.com/go-audio/audio"
)

// Asset is a decoded PCM buffer held in memory for one Slice call
type Asset struct {
	buf *audio.IntBuffer
}

// NewAsset wraps a decoded buffer
func NewAsset(buf *audio.IntBuffer) *Asset {
	return &Asset{buf: buf}
}

func (a *Asset) Buffer() *audio.IntBuffer {
	return a.buf
}

func (a *Asset) Frames() int {
	if a == nil || a.buf == nil {
		return 0
	}
	return a.buf.NumFrames()
}

func (a *Asset) SampleRate() int {
	if a == nil || a.buf == nil || a.buf.Format == nil {
		return 0
	}
	return a.buf.Format.SampleRate
}

func (a *Asset) channels() int {
	if a.buf.Format == nil || a.buf.Format.NumChannels == 0 {
		return 1
	}
	return a.buf.Format.NumChannels
}

// DurationMillis returns the playing time in whole milliseconds
func (a *Asset) DurationMillis() int64 {
	rate := a.SampleRate()
	if rate == 0 {
		return 0
	}
	return int64(a.Frames()) * 1000 / int64(rate)
}

// Segment returns the frames covered by w. The data is shared, not copied.
func (a *Asset) Segment(w Window) *Asset {
	rate := int64(a.SampleRate())
	frames := a.Frames()

	from := clampFrame(w.Start*rate/1000, frames)
	to := clampFrame(w.End*rate/1000, frames)
	if to < from {
		to = from
	}

	ch := a.channels()
	return &Asset{buf: &audio.IntBuffer{
		Format:         a.buf.Format,
		Data:           a.buf.Data[from*ch : to*ch],
		SourceBitDepth: a.buf.SourceBitDepth,
	}}
}

func clampFrame(f int64, frames int) int {
	if f < 0 {
		return 0
	}
	if f > int64(frames) {
		return frames
	}
	return int(f)
}
