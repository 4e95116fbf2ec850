package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-audio/audio"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/executor"
)

var (
	// ErrNotFound is returned when the input file does not exist
	ErrNotFound = errors.New("audio file not found")
	// ErrDecode is returned when the decoder rejects the input
	ErrDecode = errors.New("could not decode audio")
)

const bitDepth = 16

// Decoder loads an audio file of any supported container into memory
type Decoder interface {
	Decode(ctx context.Context, path string) (*Asset, error)
}

type ffmpegDecoder struct {
	executor   executor.Executor
	binary     string
	sampleRate int
	logger     logger.Logger
}

// NewFFmpegDecoder decodes through ffmpeg into 16-bit mono PCM at sampleRate
func NewFFmpegDecoder(exec executor.Executor, binary string, sampleRate int, log logger.Logger) Decoder {
	return &ffmpegDecoder{
		executor:   exec,
		binary:     binary,
		sampleRate: sampleRate,
		logger:     log,
	}
}

// Decode runs ffmpeg with raw PCM on stdout
// -vn: drop any video/cover art stream
// -f s16le -acodec pcm_s16le: headerless 16-bit little-endian samples
// -ac 1 -ar N: mono at the whisper sample rate
func (d *ffmpegDecoder) Decode(ctx context.Context, path string) (*Asset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}

	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", strconv.Itoa(d.sampleRate),
		"pipe:1",
	}

	d.logger.Debug(ctx, "Decoding with %s: %s", d.binary, path)

	raw, err := d.executor.Output(ctx, d.binary, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("decode canceled: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return NewAsset(pcm16ToBuffer(raw, d.sampleRate)), nil
}

// pcm16ToBuffer converts little-endian signed 16-bit mono samples. A trailing odd byte is dropped.
func pcm16ToBuffer(raw []byte, sampleRate int) *audio.IntBuffer {
	n := len(raw) / 2
	data := make([]int, n)
	for i := 0; i < n; i++ {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}
