package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/audio-transcriber/internal/config"
	"github.com/nguyentantai21042004/audio-transcriber/internal/logger"
	"github.com/nguyentantai21042004/audio-transcriber/pkg/executor"
)

type whisperCPP struct {
	executor executor.Executor
	binary   string
	model    string
	prompt   string
	threads  int
	logger   logger.Logger
}

// NewWhisperCPP checks that the whisper.cpp binary and model weights are present
func NewWhisperCPP(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	binary, err := exec.LookPath(cfg.BinaryPath)
	if err != nil {
		return nil, fmt.Errorf("whisper binary %s: %w", cfg.BinaryPath, err)
	}

	info, err := os.Stat(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("whisper model %s: %w", cfg.ModelPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("whisper model %s is a directory", cfg.ModelPath)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = 4
	}

	log.Info(context.Background(), "Whisper model loaded: %s (binary %s, %d threads)", cfg.ModelPath, binary, threads)

	return &whisperCPP{
		executor: exec,
		binary:   binary,
		model:    cfg.ModelPath,
		prompt:   cfg.Prompt,
		threads:  threads,
		logger:   log,
	}, nil
}

func (w *whisperCPP) Name() string { return "whisper.cpp" }

// Transcribe runs whisper.cpp and reads back the plain text output
// -otxt: write <prefix>.txt next to the waveform
// -np: no progress prints on stdout
// -l: force language instead of auto-detect
func (w *whisperCPP) Transcribe(ctx context.Context, wavPath, language string) (string, error) {
	if _, err := os.Stat(wavPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAudioMissing, wavPath)
		}
		return "", fmt.Errorf("stat audio: %w", err)
	}

	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	txtPath := outputPrefix + ".txt"
	defer os.Remove(txtPath)

	args := []string{
		"-m", w.model,
		"-f", wavPath,
		"-l", language,
		"-t", strconv.Itoa(w.threads),
		"-otxt",
		"-np",
		"--output-file", outputPrefix,
	}
	if w.prompt != "" {
		args = append(args, "--prompt", w.prompt)
	}

	w.logger.Info(ctx, "Starting transcription with %d threads (language %s): %s", w.threads, language, wavPath)

	if _, err := w.executor.Execute(ctx, w.binary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmptyTranscript
	}

	w.logger.Info(ctx, "Transcription completed (%d chars)", len(text))
	return text, nil
}
